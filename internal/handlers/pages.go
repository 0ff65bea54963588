package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/emergentai/taskify/apps/website/internal/apperror"
	"github.com/emergentai/taskify/apps/website/internal/components"
	"github.com/emergentai/taskify/apps/website/internal/metrics"
	"github.com/emergentai/taskify/apps/website/internal/scroll"
)

// ViewportWidthHeader is the client hint the layout asks browsers to send.
const ViewportWidthHeader = "Sec-CH-Viewport-Width"

const LivePath = "/live"

func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	site := h.site

	testimonials := components.NewTestimonialCarousel(site.Testimonials.Items, h.cfg.Carousel.LazyMount)
	if testimonials.Lazy() {
		mounted := testimonials.PrimeViewport(h.viewportWidth(r))
		metrics.SlidesMounted.WithLabelValues(metrics.PhaseRender).Add(float64(len(mounted)))
	}

	var liveURL string
	if h.cfg.Live.Enabled {
		liveURL = LivePath
	}

	page := components.Layout(
		components.PageConfig{
			Title:       site.Title,
			Description: site.Description,
			OGImage:     "/static/images/og-image.jpg",
			LiveURL:     liveURL,
		},
		components.Navbar(site, scroll.NewController().Visuals(), false),
		components.Hero(site.Hero),
		components.Features(site.Features),
		components.HowItWorks(site.Steps),
		components.Testimonials(site.Testimonials.Heading, testimonials),
		components.Pricing(site.Pricing),
		components.CallToAction(site.CTA),
		components.Contact(site.Contact),
		components.PageFooter(site),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		metrics.PageRenders.WithLabelValues("error").Inc()
		apperror.Write(w, h.log, apperror.ErrInternal.WithInternal(err))
		return
	}
	metrics.PageRenders.WithLabelValues("ok").Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", ViewportWidthHeader)
	w.Header().Add("Vary", ViewportWidthHeader)
	_, _ = buf.WriteTo(w)
}

// viewportWidth reads the width hint, falling back to the configured
// default when it is missing or nonsensical.
func (h *Handler) viewportWidth(r *http.Request) float64 {
	if raw := r.Header.Get(ViewportWidthHeader); raw != "" {
		if width, err := strconv.ParseFloat(raw, 64); err == nil && width > 0 {
			return width
		}
	}
	return h.cfg.Carousel.DefaultViewportWidth
}
