package scroll

const (
	HiddenScale  = 0.9
	VisibleScale = 1.0

	// Blur radii in px
	HiddenBlur  = 5.0
	VisibleBlur = 0.0
)

// Visuals are the values the navbar element is styled with.
type Visuals struct {
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
	Blur  float64 `json:"blur"`
}

// Normalize maps v from [lo, hi] onto [0, 1], clamping outside values.
func Normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	t := (v - lo) / (hi - lo)
	return min(1, max(0, t))
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func ScaleFor(offsetY float64) float64 {
	return Lerp(HiddenScale, VisibleScale, Normalize(offsetY, MinOffset, MaxOffset))
}

func BlurFor(offsetY float64) float64 {
	return Lerp(HiddenBlur, VisibleBlur, Normalize(offsetY, MinOffset, MaxOffset))
}

// Visuals derives the styling values from the offset.
func (s State) Visuals() Visuals {
	return Visuals{
		Y:     s.OffsetY,
		Scale: ScaleFor(s.OffsetY),
		Blur:  BlurFor(s.OffsetY),
	}
}
