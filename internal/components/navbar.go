package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
	"github.com/emergentai/taskify/apps/website/internal/scroll"
)

// NavbarStyle turns controller visuals into the inline style the live
// script also writes on every navbar update.
func NavbarStyle(v scroll.Visuals) string {
	return fmt.Sprintf("transform: translateY(%.2fpx) scale(%.3f); filter: blur(%.2fpx)", v.Y, v.Scale, v.Blur)
}

// Navbar renders the sticky navigation bar in the given scroll state.
func Navbar(site *content.Site, v scroll.Visuals, menuOpen bool) g.Node {
	return Nav(
		ID("navbar"),
		Class("navbar fixed inset-x-0 top-0 z-[60]"),
		g.Attr("data-navbar", ""),
		Style(NavbarStyle(v)),

		Div(
			Class("container flex justify-between items-center"),

			A(Href("#"), Logo(site.Brand)),

			Button(
				Type("button"),
				Class("hamburger lg:hidden"),
				g.Attr("data-menu-toggle", ""),
				g.Attr("aria-controls", "nav-links"),
				g.Attr("aria-expanded", fmt.Sprint(menuOpen)),
				g.Attr("aria-label", "Toggle navigation"),
				Span(Class("bar")),
				Span(Class("bar")),
				Span(Class("bar")),
			),

			Ul(
				ID("nav-links"),
				Class(navLinksClass(menuOpen)),
				g.Group(g.Map(site.Nav, func(l content.Link) g.Node {
					return Li(
						A(Href(l.Href), g.Attr("data-nav-link", ""), g.Text(l.Label)),
					)
				})),
			),
		),
	)
}

func navLinksClass(open bool) string {
	if open {
		return "nav-links open"
	}
	return "nav-links"
}
