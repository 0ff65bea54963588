package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
)

func Pricing(p content.Pricing) g.Node {
	return Section(
		ID("pricing"),
		Class("App-section pricing-section container py-12"),
		Div(Class("text-center"), SectionHeading(p.Heading)),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-6 mt-12"),
			g.Group(g.Map(p.Plans, plan)),
		),
	)
}

func plan(p content.Plan) g.Node {
	return Div(
		Class("pricing-plan card border border-base-300"),
		g.If(p.Featured, g.Attr("data-featured", "")),
		Div(
			Class("card-body"),
			H3(Class("font-semibold text-lg"), g.Text(p.Name+" ("+p.Price+")")),
			P(Class("mt-2 text-sm text-base-content/80"), g.Text(p.Description)),
			A(Href("#contact"), Class("btn btn-primary btn-sm mt-4"), g.Text(p.CTA)),
		),
	)
}
