package glimmer

import "fmt"

// DefaultPalette is the color set particles are assigned from when
// Config.Palette is left empty. Warm pinks against a dark background.
var DefaultPalette = []Color{
	{R: 1.00, G: 0.42, B: 0.62, A: 1},
	{R: 1.00, G: 0.55, B: 0.74, A: 1},
	{R: 1.00, G: 0.71, B: 0.84, A: 1},
	{R: 0.98, G: 0.86, B: 0.91, A: 1},
	{R: 1.00, G: 1.00, B: 1.00, A: 1},
}

// Config controls the particle field. Zero values are not usable; start from
// DefaultConfig and override fields as needed.
type Config struct {
	// ParticleCount is the fixed population size. It never changes after the
	// field is constructed, regardless of retargeting.
	ParticleCount int

	// HeartScale multiplies the unit heart curve (|x| <= 16) into pixels.
	HeartScale float64

	// BaseFontSize is the maximum font size used when rasterizing text.
	// Longer strings shrink proportionally to fit the viewport width.
	BaseFontSize float64

	// MouseRadius is the pointer interaction radius in pixels.
	MouseRadius float64
	// PushStrength scales the repulsion impulse at zero pointer distance.
	// Falloff to the radius edge is linear.
	PushStrength float64

	// FadeAlpha is the opacity of the black rectangle painted over the canvas
	// each tick. Lower values leave longer motion trails.
	FadeAlpha float64

	// SampleStride is the glyph mask scan step in pixels. Larger strides
	// produce sparser candidate sets at lower sampling cost.
	SampleStride int
	// CoverageThreshold is the minimum mask alpha for a scanned cell to count
	// as inside the glyph.
	CoverageThreshold uint8
	// Jitter is the maximum per-axis displacement applied to each sampled
	// glyph point, so particles sharing a candidate pixel do not stack.
	Jitter float64

	// SizeRange is the range of particle radii assigned at construction.
	SizeRange Range
	// EaseRange is the range of spring-to-target factors.
	EaseRange Range
	// FrictionRange is the range of per-tick velocity damping multipliers.
	// Values must stay below 1 or velocities diverge.
	FrictionRange Range
	// TwinkleSpeed is the range of per-tick opacity deltas.
	TwinkleSpeed Range

	// Palette is the set of colors particles are assigned from. Empty means
	// DefaultPalette.
	Palette []Color

	// ShowFPS overlays an FPS/TPS readout on the presented frame.
	ShowFPS bool
}

// DefaultConfig returns the tuning used by the examples.
func DefaultConfig() Config {
	return Config{
		ParticleCount:     2800,
		HeartScale:        13,
		BaseFontSize:      280,
		MouseRadius:       100,
		PushStrength:      2,
		FadeAlpha:         0.1,
		SampleStride:      4,
		CoverageThreshold: 128,
		Jitter:            2,
		SizeRange:         Range{0.8, 2.6},
		EaseRange:         Range{0.02, 0.07},
		FrictionRange:     Range{0.88, 0.94},
		TwinkleSpeed:      Range{0.004, 0.015},
		Palette:           DefaultPalette,
	}
}

// Validate reports the first problem with the config, or nil.
func (c Config) Validate() error {
	if c.ParticleCount <= 0 {
		return fmt.Errorf("glimmer: ParticleCount must be positive, got %d", c.ParticleCount)
	}
	if c.HeartScale <= 0 {
		return fmt.Errorf("glimmer: HeartScale must be positive, got %g", c.HeartScale)
	}
	if c.BaseFontSize <= 0 {
		return fmt.Errorf("glimmer: BaseFontSize must be positive, got %g", c.BaseFontSize)
	}
	if c.MouseRadius <= 0 {
		return fmt.Errorf("glimmer: MouseRadius must be positive, got %g", c.MouseRadius)
	}
	if c.FadeAlpha <= 0 || c.FadeAlpha > 1 {
		return fmt.Errorf("glimmer: FadeAlpha must be in (0, 1], got %g", c.FadeAlpha)
	}
	if c.SampleStride < 1 {
		return fmt.Errorf("glimmer: SampleStride must be at least 1, got %d", c.SampleStride)
	}
	if c.Jitter < 0 {
		return fmt.Errorf("glimmer: Jitter must not be negative, got %g", c.Jitter)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"SizeRange", c.SizeRange},
		{"EaseRange", c.EaseRange},
		{"FrictionRange", c.FrictionRange},
		{"TwinkleSpeed", c.TwinkleSpeed},
	} {
		if r.r.Min > r.r.Max {
			return fmt.Errorf("glimmer: %s has Min > Max (%g > %g)", r.name, r.r.Min, r.r.Max)
		}
	}
	if c.FrictionRange.Min <= 0 || c.FrictionRange.Max >= 1 {
		return fmt.Errorf("glimmer: FrictionRange must lie inside (0, 1), got [%g, %g]",
			c.FrictionRange.Min, c.FrictionRange.Max)
	}
	return nil
}

// palette returns the effective color palette.
func (c Config) palette() []Color {
	if len(c.Palette) == 0 {
		return DefaultPalette
	}
	return c.Palette
}
