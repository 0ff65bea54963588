package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
)

func PageFooter(site *content.Site) g.Node {
	return Footer(
		Class("App-section footer-section relative border-t border-base-300 py-8"),
		Div(
			Class("container flex flex-col gap-3 text-center"),
			P(
				Class("footer-links flex flex-wrap justify-center gap-3"),
				g.Group(g.Map(site.Nav, func(l content.Link) g.Node {
					return A(Href(l.Href), g.Text(l.Label))
				})),
			),
			P(Class("footer-legal text-sm text-base-content/60"), g.Text(strings.Join(site.Footer.Legal, " | "))),
			P(Class("footer-tagline text-sm"), g.Text(site.Tagline)),
		),
	)
}
