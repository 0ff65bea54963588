package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/content"
)

// Contact renders the contact form. There is no submission endpoint; the
// form posts nowhere.
func Contact(c content.Contact) g.Node {
	return Section(
		ID("contact"),
		Class("App-section contact-section container py-12"),
		SectionHeading(c.Heading),
		P(Class("mt-3 text-base-content/70"), g.Text(c.Body)),
		Form(
			Class("contact-form mt-6 flex flex-col gap-3 max-w-lg"),
			g.Attr("onsubmit", "return false"),
			Input(Type("text"), Name("name"), Placeholder("Name"), Required(), Class("input")),
			Input(Type("email"), Name("email"), Placeholder("Email"), Required(), Class("input")),
			Textarea(Name("message"), Placeholder("Message"), Required(), Class("textarea")),
			Button(Type("submit"), Class("btn btn-primary"), g.Text(c.Submit)),
		),
	)
}
