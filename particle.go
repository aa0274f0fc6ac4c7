package glimmer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Opacity oscillation bounds. The twinkle reflects at both ends; a single
// tick's overshoot past a bound is accepted rather than clamped.
const (
	opacityMin = 0.4
	opacityMax = 1.0
)

// particle holds per-slot simulation state. Unexported; managed by Field.
// The per-particle constants (ease, friction, twinkle, size, color) are
// randomized once at construction and never change, so no two particles
// move or fade identically.
type particle struct {
	x, y     float64
	tx, ty   float64 // current attractor; reassigned wholesale on retarget
	vx, vy   float64
	baseSize float64
	size     float64
	color    Color
	opacity  float64
	twinkle  float64 // signed per-tick opacity delta
	ease     float64
	friction float64
}

// repulse is the pointer interaction passed to step. An unset active flag
// means no pointer anywhere, not a pointer at the origin.
type repulse struct {
	x, y     float64
	radius   float64
	strength float64
	active   bool
}

// step advances the particle by one nominal tick: spring toward the target,
// push away from the pointer, damp, integrate, twinkle.
func (p *particle) step(r repulse) {
	// Spring-to-target. Not a snap; the ease factor sets convergence speed.
	p.vx += (p.tx - p.x) * p.ease
	p.vy += (p.ty - p.y) * p.ease

	if r.active {
		dx := p.x - r.x
		dy := p.y - r.y
		// Squared distance first so particles outside the radius skip the
		// square root entirely.
		if d2 := dx*dx + dy*dy; d2 < r.radius*r.radius && d2 > 0 {
			d := math.Sqrt(d2)
			f := (r.radius - d) / r.radius * r.strength
			p.vx += dx / d * f
			p.vy += dy / d * f
		}
	}

	p.vx *= p.friction
	p.vy *= p.friction
	p.x += p.vx
	p.y += p.vy

	p.opacity += p.twinkle
	if p.opacity > opacityMax || p.opacity < opacityMin {
		p.twinkle = -p.twinkle
	}
}

// draw renders the particle as a filled circle with its current opacity
// applied as a per-draw alpha.
func (p *particle) draw(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst,
		float32(p.x), float32(p.y), float32(p.size),
		p.color.WithAlpha(p.opacity).toRGBA(), true)
}
