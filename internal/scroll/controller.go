package scroll

import (
	"context"
	"sync"
)

// Controller owns one navbar's State. Samples are applied in the order
// Sample is called; Run applies them in channel order.
type Controller struct {
	mu    sync.Mutex
	state State
}

func NewController() *Controller {
	return &Controller{}
}

// Sample applies one scroll position and returns the resulting visuals.
func (c *Controller) Sample(y float64) Visuals {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.Step(y)
	return c.state.Visuals()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Visuals() Visuals {
	return c.State().Visuals()
}

// Run consumes samples until the channel closes or ctx is done, calling
// emit after each one. It returns ctx.Err() on cancellation and nil when
// the channel is drained.
func (c *Controller) Run(ctx context.Context, samples <-chan float64, emit func(State, Visuals)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case y, ok := <-samples:
			if !ok {
				return nil
			}
			v := c.Sample(y)
			if emit != nil {
				emit(c.State(), v)
			}
		}
	}
}
