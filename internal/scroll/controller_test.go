package scroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Sample(t *testing.T) {
	c := NewController()

	initial := c.Visuals()
	assert.Equal(t, 0.0, initial.Y)
	assert.InDelta(t, 1.0, initial.Scale, 1e-9)
	assert.InDelta(t, 0.0, initial.Blur, 1e-9)

	v := c.Sample(0)
	assert.Equal(t, 0.0, v.Y)

	v = c.Sample(150)
	assert.Equal(t, -100.0, v.Y)
	assert.InDelta(t, 0.9, v.Scale, 1e-9)
	assert.InDelta(t, 5.0, v.Blur, 1e-9)

	assert.Equal(t, State{LastY: 150, OffsetY: -100}, c.State())
}

func TestController_RunAppliesSamplesInOrder(t *testing.T) {
	c := NewController()
	samples := make(chan float64, 4)
	for _, y := range []float64{0, 150, 300, 50} {
		samples <- y
	}
	close(samples)

	var seen []State
	err := c.Run(context.Background(), samples, func(s State, _ Visuals) {
		seen = append(seen, s)
	})
	require.NoError(t, err)

	require.Len(t, seen, 4)
	assert.Equal(t, []float64{0, 150, 300, 50}, []float64{seen[0].LastY, seen[1].LastY, seen[2].LastY, seen[3].LastY})
	assert.Equal(t, -100.0, seen[2].OffsetY)
	assert.Equal(t, 0.0, seen[3].OffsetY)
}

func TestController_RunStopsOnCancel(t *testing.T) {
	c := NewController()
	ctx, cancel := context.WithCancel(context.Background())
	samples := make(chan float64)

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, samples, nil)
	}()

	samples <- 500
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 500.0, c.State().LastY)
}

func TestMenu(t *testing.T) {
	var m Menu
	assert.False(t, m.Open())

	assert.True(t, m.Toggle())
	assert.True(t, m.Open())

	assert.False(t, m.SelectLink())
	assert.False(t, m.Open())

	// a link activated while the menu is closed still flips it
	assert.True(t, m.SelectLink())
	assert.True(t, m.Open())
	assert.False(t, m.SelectLink())

	assert.True(t, m.Toggle())
	assert.False(t, m.Toggle())
}
