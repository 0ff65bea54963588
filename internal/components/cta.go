package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
)

func CallToAction(c content.CTA) g.Node {
	return Section(
		Class("App-section cta-banner-section relative py-16 text-center overflow-hidden"),
		Div(Class("max-sm:hidden -bottom-40 absolute bg-secondary blur-[180px] w-72 h-64 start-16")),
		Div(Class("max-sm:hidden -bottom-40 absolute bg-primary blur-[180px] w-72 h-64 end-16")),
		Div(
			Class("relative"),
			H2(Class("font-bold text-xl sm:text-2xl lg:text-4xl"), g.Text(c.Heading)),
			A(
				Href("#pricing"),
				Class("btn btn-primary mt-6"),
				Icon("lucide--arrow-right size-4", ""),
				g.Text(c.Button),
			),
		),
	)
}
