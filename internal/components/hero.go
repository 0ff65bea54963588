package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
)

func Hero(hero content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("App-section hero-section relative overflow-hidden"),

		Div(
			Class("container text-center pt-28 pb-20"),
			H1(
				Class("text-3xl md:text-5xl font-extrabold tracking-tight"),
				g.Text(hero.Headline),
			),
			P(
				Class("mt-5 text-base-content/80 xl:text-lg"),
				g.Text(hero.Body),
			),
			Div(
				Class("mt-8 inline-flex justify-center gap-3"),
				A(
					Href("#pricing"),
					Class("btn btn-primary"),
					Icon("lucide--rocket size-4", ""),
					g.Text(hero.Primary),
				),
				A(
					Href(hero.Secondary.Href),
					Class("secondary-cta btn btn-ghost"),
					Icon("lucide--play size-4", ""),
					g.Text(hero.Secondary.Label),
				),
			),
		),
	)
}
