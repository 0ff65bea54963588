package carousel

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/taskify/apps/website/internal/viewport"
)

// Placeholder footprint, also the nominal slide size used for layout
// estimates before the browser reports real regions.
const (
	SlideWidth  = 300.0
	SlideHeight = 200.0
)

const baseClass = "carousel relative overflow-hidden rounded-2xl bg-gray-50"

// Carousel is one marquee instance with its mount state.
type Carousel struct {
	track      Track
	className  string
	lazy       bool
	visibility *VisibilitySet
}

// MountOption configures how a carousel mounts its entries.
type MountOption func(*Carousel)

// WithLazyMount renders placeholders until an entry is mounted.
func WithLazyMount() MountOption {
	return func(c *Carousel) { c.lazy = true }
}

// New builds a carousel. Without WithLazyMount every entry starts visible.
func New(slides []Slide, className string, opts ...MountOption) *Carousel {
	c := &Carousel{
		track:     NewTrack(slides),
		className: className,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.visibility = NewVisibilitySet(c.track.IDs(), !c.lazy)
	return c
}

func (c *Carousel) Track() Track               { return c.track }
func (c *Carousel) Lazy() bool                 { return c.lazy }
func (c *Carousel) Visibility() *VisibilitySet { return c.visibility }

// Mount marks id visible and returns its content. ok is false when id is
// unknown or was already mounted.
func (c *Carousel) Mount(id string) (node g.Node, ok bool) {
	entry, found := c.track.Lookup(id)
	if !found || !c.visibility.Mark(id) {
		return nil, false
	}
	return c.renderEntry(entry), true
}

// Adopt records that id is already mounted on the client without
// producing content for it.
func (c *Carousel) Adopt(id string) bool {
	return c.visibility.Mark(id)
}

// LayoutRegion is where entry index sits when the strip starts at x=0.
func LayoutRegion(index int) viewport.Rect {
	return viewport.Rect{
		X:      float64(index) * SlideWidth,
		Width:  SlideWidth,
		Height: SlideHeight,
	}
}

// Binding ties each entry of a carousel to an observer subscription.
type Binding struct {
	subs map[string]*viewport.Subscription
}

// Observe subscribes every entry of the strip. place gives each entry's
// starting region; nil uses LayoutRegion. onMount receives the content of
// each entry the first time its region enters the zone.
func (c *Carousel) Observe(o *viewport.Observer, place func(Entry) viewport.Rect, onMount func(id string, node g.Node)) *Binding {
	if place == nil {
		place = func(e Entry) viewport.Rect { return LayoutRegion(e.Index) }
	}

	b := &Binding{subs: make(map[string]*viewport.Subscription, len(c.track.Entries))}
	for _, e := range c.track.Entries {
		b.subs[e.ID] = o.Observe(e.ID, place(e), func(id string) {
			if node, ok := c.Mount(id); ok && onMount != nil {
				onMount(id, node)
			}
		})
	}
	return b
}

// Move updates the observed region for id. It reports false for ids the
// binding does not know.
func (b *Binding) Move(id string, region viewport.Rect) bool {
	s, ok := b.subs[id]
	if !ok {
		return false
	}
	s.Move(region)
	return true
}

// Release ends observation of every entry.
func (b *Binding) Release() {
	for _, s := range b.subs {
		s.Release()
	}
}

// PrimeViewport mounts the entries a viewport of the given width would
// see with the strip at its starting position. It returns the newly
// mounted ids in strip order.
func (c *Carousel) PrimeViewport(width float64) []string {
	if !c.lazy || width <= 0 {
		return nil
	}

	o := viewport.NewObserver()
	defer o.Close()
	o.SetViewport(viewport.Rect{Width: width, Height: SlideHeight})

	var mounted []string
	c.Observe(o, nil, func(id string, _ g.Node) {
		mounted = append(mounted, id)
	})
	o.Check()
	return mounted
}

// Render produces the full marquee markup for the current mount state.
func (c *Carousel) Render() g.Node {
	trackAttrs := []g.Node{
		Class("carousel-track"),
		g.Attr("data-carousel-track", ""),
		g.Attr("data-animated", fmt.Sprint(c.track.Animated())),
	}
	if c.track.Animated() {
		trackAttrs = append(trackAttrs,
			Style(fmt.Sprintf("animation-duration: %ds", int(c.track.Duration.Seconds()))))
	}

	return Section(
		Class(c.classes()),
		g.Attr("aria-roledescription", "carousel"),
		g.Attr("aria-label", "Showcase"),
		g.Attr("data-carousel", ""),
		Div(
			append(trackAttrs, g.Map(c.track.Entries, c.renderEntry)...)...,
		),
	)
}

func (c *Carousel) classes() string {
	extra := strings.TrimSpace(c.className)
	if extra == "" {
		return baseClass
	}
	return baseClass + " " + extra
}

func (c *Carousel) renderEntry(e Entry) g.Node {
	mounted := c.visibility.Visible(e.ID)

	var content g.Node
	if mounted {
		content = e.Component
	} else {
		content = SlidePlaceholder()
	}

	return Div(
		Class("carousel-slide"),
		g.Attr("data-slide-id", e.ID),
		g.Attr("data-mounted", fmt.Sprint(mounted)),
		g.If(e.Duplicate, g.Attr("aria-hidden", "true")),
		content,
	)
}

// SlidePlaceholder keeps an unmounted slide's footprint in the strip.
func SlidePlaceholder() g.Node {
	return Div(
		Class("carousel-placeholder"),
		g.Attr("aria-hidden", "true"),
		Style(fmt.Sprintf("width: %gpx; height: %gpx; opacity: 0", SlideWidth, SlideHeight)),
	)
}
