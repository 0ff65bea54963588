package scroll

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    State
	}{
		{"zero state", nil, State{}},
		{"stay near top", []float64{0, 50, 100}, State{LastY: 100, OffsetY: 0}},
		{"scroll down hides and clamps", []float64{0, 150, 300}, State{LastY: 300, OffsetY: -100}},
		{"first step past top zone hides fully", []float64{0, 120, 150}, State{LastY: 150, OffsetY: -100}},
		{"first sample already past top zone", []float64{101, 131}, State{LastY: 131, OffsetY: -100}},
		{"scroll up returns to top", []float64{300, 50}, State{LastY: 50, OffsetY: 0}},
		{"scroll up partially reveals", []float64{0, 150, 400, 360}, State{LastY: 360, OffsetY: -60}},
		{"reveal ceiling", []float64{0, 150, 400, 200}, State{LastY: 200, OffsetY: 0}},
		{"no movement keeps offset", []float64{0, 150, 400, 400}, State{LastY: 400, OffsetY: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Replay(tt.samples...))
		})
	}
}

func TestStep_DownwardHideIsProportional(t *testing.T) {
	s := State{LastY: 200, OffsetY: 0}.Step(230)
	assert.Equal(t, -30.0, s.OffsetY)

	s = s.Step(250)
	assert.Equal(t, -50.0, s.OffsetY)
	assert.False(t, s.Hidden())

	s = s.Step(400)
	assert.True(t, s.Hidden())
}

func TestStep_DownwardInsideTopZoneDoesNotHide(t *testing.T) {
	s := State{}.Step(80)
	assert.Equal(t, 0.0, s.OffsetY)
	assert.Equal(t, 80.0, s.LastY)
}

func TestStep_OffsetAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		var s State
		for i := 0; i < 100; i++ {
			y := rng.Float64() * 2000
			if rng.Intn(5) == 0 {
				y = rng.Float64() * TopZone
			}
			s = s.Step(y)

			if s.OffsetY < MinOffset || s.OffsetY > MaxOffset {
				t.Fatalf("run %d sample %d: offset %v out of range", run, i, s.OffsetY)
			}
			if y <= TopZone && s.OffsetY != 0 {
				t.Fatalf("run %d sample %d: y=%v inside top zone but offset %v", run, i, y, s.OffsetY)
			}
			if s.LastY != y {
				t.Fatalf("run %d sample %d: lastY %v, want %v", run, i, s.LastY, y)
			}
		}
	}
}
