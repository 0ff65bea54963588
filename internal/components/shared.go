package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(brand string) g.Node {
	return Span(
		Class("logo font-bold text-xl"),
		g.Text(brand),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

// Icon renders an iconify glyph. iconClass is "set--name" optionally
// followed by size classes; an empty ariaLabel hides it from assistive tech.
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if parts := strings.Fields(iconClass); len(parts) > 1 {
		classes = fmt.Sprintf("%s %s", classes, strings.Join(parts[1:], " "))
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.If(ariaLabel != "", g.Group([]g.Node{g.Attr("role", "img"), g.Attr("aria-label", ariaLabel)})),
		g.If(ariaLabel == "", g.Attr("aria-hidden", "true")),
	)
}

func IconBadge(icon string) g.Node {
	return Span(
		Class("icon-badge inline-flex items-center justify-center size-8 rounded-box"),
		Icon(icon+" size-4", ""),
	)
}

// SectionHeading is the h2 every content section opens with.
func SectionHeading(text string) g.Node {
	return H2(Class("section-heading font-semibold text-2xl sm:text-3xl"), g.Text(text))
}
