// Package scroll implements the navbar hide/reveal controller.
//
// The controller is a pure state machine over sampled vertical scroll
// positions. Scrolling down past the top zone pushes the navbar offset
// toward MinOffset, scrolling up pulls it back toward MaxOffset, and any
// sample inside the top zone pins it fully visible. Scale and blur are
// derived from the offset alone.
package scroll

const (
	// TopZone is the scroll depth at or above which the navbar is always shown.
	TopZone = 100.0

	// MinOffset is the fully hidden offset.
	MinOffset = -100.0

	// MaxOffset is the fully visible offset.
	MaxOffset = 0.0
)

// State is the per-navbar scroll state. The zero value is a navbar at the
// top of the page, fully visible.
type State struct {
	LastY   float64 `json:"lastY"`
	OffsetY float64 `json:"offsetY"`
}

// Step applies one scroll sample and returns the next state.
func (s State) Step(latestY float64) State {
	delta := latestY - s.LastY
	offset := s.OffsetY

	switch {
	case delta > 0 && latestY > TopZone:
		offset = max(MinOffset, offset-delta)
	case delta < 0:
		offset = min(MaxOffset, offset-delta)
	}

	if latestY <= TopZone {
		offset = MaxOffset
	}

	return State{LastY: latestY, OffsetY: offset}
}

// Hidden reports whether the navbar is fully pushed out of view.
func (s State) Hidden() bool {
	return s.OffsetY <= MinOffset
}

// Replay folds samples over the zero state.
func Replay(samples ...float64) State {
	var s State
	for _, y := range samples {
		s = s.Step(y)
	}
	return s
}
