package glimmer

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Field owns the fixed-size particle population and orchestrates per-tick
// updates against the current pointer position and target shape.
//
// A Field is single-owner state: setters (SetText, SetPointer, Resize) and
// Step/Draw must all be called from the same goroutine, normally the game
// loop. Setter writes are last-write-wins and visible to the next tick.
type Field struct {
	cfg     Config
	rng     *rand.Rand
	sampler *Sampler

	particles []particle
	w, h      int
	text      string

	pointerX, pointerY float64
	hasPointer         bool
}

// NewField creates a field. The population is not constructed until the
// first Resize with positive dimensions; sampling against a degenerate
// viewport never happens.
//
// raster supplies the text-to-alpha-mask capability; nil restricts the field
// to the heart shape. rng seeds all per-particle constants and shape
// sampling; nil uses an arbitrary seed.
func NewField(cfg Config, raster Rasterizer, rng *rand.Rand) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{
		cfg:     cfg,
		rng:     rng,
		sampler: NewSampler(cfg, raster, rng),
	}, nil
}

// Ready reports whether the population has been constructed.
func (f *Field) Ready() bool {
	return f.particles != nil
}

// Count returns the particle count, zero before the first valid Resize.
func (f *Field) Count() int {
	return len(f.particles)
}

// Size returns the current viewport dimensions.
func (f *Field) Size() (w, h int) {
	return f.w, f.h
}

// Resize records new viewport dimensions. The first call with positive
// dimensions constructs the population; later calls retarget the existing
// particles in place. Degenerate dimensions are ignored.
func (f *Field) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	if w == f.w && h == f.h {
		return
	}
	f.w, f.h = w, h
	if f.particles == nil {
		f.populate()
		return
	}
	f.retarget()
}

// SetText replaces the shape request. A change retargets every particle;
// positions and velocities carry over, so the field morphs rather than
// resets.
func (f *Field) SetText(text string) {
	if text == f.text {
		return
	}
	f.text = text
	if f.particles != nil {
		f.retarget()
	}
}

// Text returns the current shape request.
func (f *Field) Text() string {
	return f.text
}

// SetPointer records the pointer position for the next tick.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer marks the pointer as absent; repulsion is skipped entirely.
func (f *Field) ClearPointer() {
	f.hasPointer = false
}

// Step advances every particle by one nominal tick in slot order.
func (f *Field) Step() {
	r := repulse{
		x:        f.pointerX,
		y:        f.pointerY,
		radius:   f.cfg.MouseRadius,
		strength: f.cfg.PushStrength,
		active:   f.hasPointer,
	}
	for i := range f.particles {
		f.particles[i].step(r)
	}
}

// Draw renders every particle onto dst in slot order.
func (f *Field) Draw(dst *ebiten.Image) {
	for i := range f.particles {
		f.particles[i].draw(dst)
	}
}

// populate constructs the full population with random starting positions
// scattered across the viewport, so the first moments read as a disperse-in,
// and per-particle constants drawn from the configured ranges.
func (f *Field) populate() {
	targets := f.sampler.Targets(f.text, f.w, f.h)
	palette := f.cfg.palette()

	f.particles = make([]particle, f.cfg.ParticleCount)
	for i := range f.particles {
		p := &f.particles[i]
		p.x = f.rng.Float64() * float64(f.w)
		p.y = f.rng.Float64() * float64(f.h)
		p.tx = targets[i].X
		p.ty = targets[i].Y
		p.baseSize = f.cfg.SizeRange.Random(f.rng)
		p.size = p.baseSize
		p.color = palette[f.rng.IntN(len(palette))]
		p.opacity = opacityMin + f.rng.Float64()*(opacityMax-opacityMin)
		p.twinkle = f.cfg.TwinkleSpeed.Random(f.rng)
		p.ease = f.cfg.EaseRange.Random(f.rng)
		p.friction = f.cfg.FrictionRange.Random(f.rng)
	}
}

// retarget resamples the target field and reassigns every particle's target
// at the same slot index. This is the sole mutation path for targets; the
// population size never changes.
func (f *Field) retarget() {
	targets := f.sampler.Targets(f.text, f.w, f.h)
	for i := range f.particles {
		f.particles[i].tx = targets[i].X
		f.particles[i].ty = targets[i].Y
	}
}
