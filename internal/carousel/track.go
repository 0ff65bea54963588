// Package carousel renders a horizontally looping marquee of slides.
//
// The strip is the input slides followed by a copy of each one, so a CSS
// animation that translates the strip by half its width and restarts lands
// exactly where it began. Copies share their source's content and carry a
// derived id.
package carousel

import (
	"time"

	g "maragu.dev/gomponents"
)

const (
	// DuplicateSuffix is appended to a slide id to name its loop copy.
	DuplicateSuffix = "-duplicate"

	// SecondsPerSlide keeps per-slide dwell time constant regardless of
	// how many slides the strip holds.
	SecondsPerSlide = 20
)

// Slide is one unit of carousel content. IDs must be unique within a
// carousel; duplicates are not detected.
type Slide struct {
	ID        string
	Component g.Node
}

// Entry is one position in the rendered strip.
type Entry struct {
	ID        string
	SourceID  string
	Index     int
	Duplicate bool
	Component g.Node
}

// Track is the rendered sequence plus its loop duration.
type Track struct {
	Entries  []Entry
	Duration time.Duration
}

func DuplicateID(id string) string {
	return id + DuplicateSuffix
}

// AnimationDuration is the loop length for n slides. Zero slides means no
// animation.
func AnimationDuration(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n*SecondsPerSlide) * time.Second
}

// NewTrack lays out slides followed by their copies.
func NewTrack(slides []Slide) Track {
	n := len(slides)
	entries := make([]Entry, 0, 2*n)

	for i, s := range slides {
		entries = append(entries, Entry{
			ID:        s.ID,
			SourceID:  s.ID,
			Index:     i,
			Component: s.Component,
		})
	}
	for i, s := range slides {
		entries = append(entries, Entry{
			ID:        DuplicateID(s.ID),
			SourceID:  s.ID,
			Index:     n + i,
			Duplicate: true,
			Component: s.Component,
		})
	}

	return Track{Entries: entries, Duration: AnimationDuration(n)}
}

// Animated reports whether the strip should move at all.
func (t Track) Animated() bool {
	return t.Duration > 0
}

func (t Track) IDs() []string {
	ids := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		ids[i] = e.ID
	}
	return ids
}

// Lookup finds an entry by its rendered id.
func (t Track) Lookup(id string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
