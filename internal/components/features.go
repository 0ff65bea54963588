package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
)

func Features(f content.Features) g.Node {
	return Section(
		ID("features"),
		Class("App-section features-section container py-12"),

		Div(
			Class("text-center"),
			IconBadge("lucide--sparkles"),
			SectionHeading(f.Heading),
		),

		Div(
			Class("grid grid-cols-1 md:grid-cols-2 xl:grid-cols-4 gap-6 mt-12"),
			g.Group(g.Map(f.Items, func(item content.Feature) g.Node {
				return Div(
					Class("service-item card border border-base-300"),
					Div(
						Class("card-body"),
						IconBadge(item.Icon),
						H3(Class("mt-4 font-semibold text-xl"), g.Text(item.Title)),
						P(Class("mt-2 text-sm text-base-content/80"), g.Text(item.Description)),
					),
				)
			})),
		),
	)
}

func HowItWorks(s content.Steps) g.Node {
	return Section(
		ID("how-it-works"),
		Class("App-section how-it-works-section container py-12 text-center"),
		SectionHeading(s.Heading),
		Ol(
			Class("steps mt-8 space-y-3"),
			g.Group(g.Map(s.Items, func(step string) g.Node {
				return Li(Class("step"), g.Text(step))
			})),
		),
	)
}
