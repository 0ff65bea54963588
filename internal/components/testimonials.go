package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/carousel"
	"github.com/emergentai/taskify/apps/website/internal/content"
)

func TestimonialCard(author, text string) g.Node {
	return Div(
		Class("testimonial-item card border border-base-300"),
		P(Class("testimonial-content"), g.Text(text)),
		Div(
			Class("testimonial-author flex items-center gap-2"),
			Div(Class("testimonial-avatar"), g.Attr("aria-hidden", "true")),
			P(g.Text(author)),
		),
	)
}

// TestimonialSlides turns testimonials into carousel slides keyed by their id.
func TestimonialSlides(items []content.Testimonial) []carousel.Slide {
	slides := make([]carousel.Slide, len(items))
	for i, t := range items {
		slides[i] = carousel.Slide{ID: t.ID, Component: TestimonialCard(t.Author, t.Content)}
	}
	return slides
}

// NewTestimonialCarousel builds the testimonials marquee.
func NewTestimonialCarousel(items []content.Testimonial, lazy bool) *carousel.Carousel {
	var opts []carousel.MountOption
	if lazy {
		opts = append(opts, carousel.WithLazyMount())
	}
	return carousel.New(TestimonialSlides(items), "testimonials-carousel mt-8", opts...)
}

func Testimonials(heading string, c *carousel.Carousel) g.Node {
	return Section(
		ID("testimonials"),
		Class("App-section testimonials-section container py-12"),
		Div(Class("text-center"), SectionHeading(heading)),
		c.Render(),
	)
}
