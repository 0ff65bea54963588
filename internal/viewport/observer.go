package viewport

import (
	"cmp"
	"slices"
	"sync"
)

// Callback receives the id a subscription was registered with.
type Callback func(id string)

// Observer holds subscriptions and tests them against the current
// viewport expanded by the proximity margin.
type Observer struct {
	mu       sync.Mutex
	viewport Rect
	marginX  float64
	marginY  float64
	nextID   uint64
	subs     map[uint64]*Subscription
	closed   bool
}

type Option func(*Observer)

// WithHorizontalMargin sets the left and right margin as a fraction of the
// viewport width. The default is 1, one full viewport width each side.
func WithHorizontalMargin(fraction float64) Option {
	return func(o *Observer) { o.marginX = fraction }
}

// WithVerticalMargin sets the top and bottom margin as a fraction of the
// viewport height. The default is 0.
func WithVerticalMargin(fraction float64) Option {
	return func(o *Observer) { o.marginY = fraction }
}

func NewObserver(opts ...Option) *Observer {
	o := &Observer{
		marginX: 1,
		subs:    make(map[uint64]*Subscription),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Subscription is the handle returned by Observe.
type Subscription struct {
	observer *Observer
	key      uint64
	id       string
	region   Rect
	cb       Callback
	released bool
}

func (s *Subscription) ID() string { return s.id }

// Move replaces the observed region.
func (s *Subscription) Move(region Rect) {
	s.observer.mu.Lock()
	defer s.observer.mu.Unlock()
	s.region = region
}

// Release stops observation. It is safe to call more than once and from
// inside a callback.
func (s *Subscription) Release() {
	o := s.observer
	o.mu.Lock()
	defer o.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	delete(o.subs, s.key)
}

func (s *Subscription) Released() bool {
	s.observer.mu.Lock()
	defer s.observer.mu.Unlock()
	return s.released
}

// Observe registers region under id. After Close the returned
// subscription is already released.
func (o *Observer) Observe(id string, region Rect, cb Callback) *Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := &Subscription{observer: o, id: id, region: region, cb: cb}
	if o.closed {
		s.released = true
		return s
	}
	o.nextID++
	s.key = o.nextID
	o.subs[s.key] = s
	return s
}

// SetViewport updates the viewport rectangle used by Check.
func (o *Observer) SetViewport(r Rect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.viewport = r
}

// zoneLocked is the viewport expanded by the proximity margin.
func (o *Observer) zoneLocked() Rect {
	return o.viewport.Expand(o.viewport.Width*o.marginX, o.viewport.Height*o.marginY)
}

// Check invokes the callback of every live subscription whose region
// intersects the zone and returns how many fired. Callbacks run without
// the observer lock held, in registration order.
func (o *Observer) Check() int {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return 0
	}
	zone := o.zoneLocked()
	var hits []*Subscription
	for _, s := range o.subs {
		if s.cb != nil && s.region.Intersects(zone) {
			hits = append(hits, s)
		}
	}
	o.mu.Unlock()

	slices.SortFunc(hits, func(a, b *Subscription) int { return cmp.Compare(a.key, b.key) })

	fired := 0
	for _, s := range hits {
		// a previous callback may have released it
		if s.Released() {
			continue
		}
		s.cb(s.id)
		fired++
	}
	return fired
}

// Len returns the number of live subscriptions.
func (o *Observer) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// Close releases every subscription. Later Observe calls return released
// handles and Check does nothing.
func (o *Observer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	for key, s := range o.subs {
		s.released = true
		delete(o.subs, key)
	}
}
