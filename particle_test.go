package glimmer

import (
	"math"
	"testing"
)

func testParticle() particle {
	return particle{
		x: 0, y: 0,
		tx: 100, ty: 80,
		baseSize: 2, size: 2,
		color:    DefaultPalette[0],
		opacity:  0.7,
		twinkle:  0.01,
		ease:     0.05,
		friction: 0.9,
	}
}

func noPointer() repulse {
	return repulse{}
}

func (p *particle) distToTarget() float64 {
	return math.Hypot(p.tx-p.x, p.ty-p.y)
}

// --- Spring / damping ---

func TestParticleConvergesToTarget(t *testing.T) {
	p := testParticle()
	for i := 0; i < 600; i++ {
		p.step(noPointer())
	}
	if d := p.distToTarget(); d > 0.5 {
		t.Errorf("distance after 600 ticks = %f, want < 0.5", d)
	}
	if v := math.Hypot(p.vx, p.vy); v > 0.1 {
		t.Errorf("speed after 600 ticks = %f, want near 0", v)
	}
}

func TestParticleDistanceEnvelopeDecreases(t *testing.T) {
	// The exact distance can oscillate near convergence; the envelope
	// sampled every 50 ticks must strictly decrease.
	p := testParticle()
	prev := p.distToTarget()
	for block := 0; block < 8; block++ {
		for i := 0; i < 50; i++ {
			p.step(noPointer())
		}
		d := p.distToTarget()
		if d >= prev {
			t.Fatalf("distance envelope rose at block %d: %f -> %f", block, prev, d)
		}
		prev = d
	}
}

func TestParticleVelocityBounded(t *testing.T) {
	// Friction below 1 keeps speed bounded even over a long run with a
	// distant target.
	p := testParticle()
	p.tx, p.ty = 5000, -4000
	maxSpeed := 0.0
	for i := 0; i < 2000; i++ {
		p.step(noPointer())
		maxSpeed = math.Max(maxSpeed, math.Hypot(p.vx, p.vy))
	}
	if math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) {
		t.Fatal("velocity diverged")
	}
	if maxSpeed > 10000 {
		t.Errorf("max speed = %f, unexpectedly large", maxSpeed)
	}
}

// --- Pointer repulsion ---

func TestRepulsionPushesAway(t *testing.T) {
	p := testParticle()
	p.x, p.y = 10, 0
	p.tx, p.ty = 10, 0 // no spring component
	p.step(repulse{x: 0, y: 0, radius: 100, strength: 2, active: true})
	if p.vx <= 0 {
		t.Errorf("vx = %f, want > 0 (pushed away from pointer at origin)", p.vx)
	}
	if p.vy != 0 {
		t.Errorf("vy = %f, want 0 (pointer is on the x axis)", p.vy)
	}
}

func TestRepulsionLinearFalloff(t *testing.T) {
	impulse := func(dist float64) float64 {
		p := testParticle()
		p.x, p.y = dist, 0
		p.tx, p.ty = dist, 0
		p.step(repulse{x: 0, y: 0, radius: 100, strength: 2, active: true})
		return p.vx / p.friction // undo damping to read the raw impulse
	}
	near := impulse(10)
	far := impulse(90)
	assertNear(t, "impulse at 10px", near, (100.0-10)/100*2)
	assertNear(t, "impulse at 90px", far, (100.0-90)/100*2)
	if near <= far {
		t.Error("impulse should be strongest near the pointer")
	}
}

func TestRepulsionSkippedOutsideRadius(t *testing.T) {
	p := testParticle()
	p.x, p.y = 500, 500
	p.tx, p.ty = 500, 500
	p.step(repulse{x: 0, y: 0, radius: 100, strength: 2, active: true})
	if p.vx != 0 || p.vy != 0 {
		t.Errorf("velocity = (%f, %f), want (0, 0) outside the radius", p.vx, p.vy)
	}
}

func TestRepulsionInactiveSkipped(t *testing.T) {
	p := testParticle()
	p.x, p.y = 10, 0
	p.tx, p.ty = 10, 0
	p.step(repulse{x: 0, y: 0, radius: 100, strength: 2}) // active not set
	if p.vx != 0 || p.vy != 0 {
		t.Errorf("velocity = (%f, %f), want (0, 0) with no pointer", p.vx, p.vy)
	}
}

func TestRepulsionAtZeroDistance(t *testing.T) {
	// Pointer exactly on the particle: no direction to push, must not NaN.
	p := testParticle()
	p.x, p.y = 50, 50
	p.step(repulse{x: 50, y: 50, radius: 100, strength: 2, active: true})
	if math.IsNaN(p.x) || math.IsNaN(p.y) || math.IsNaN(p.vx) || math.IsNaN(p.vy) {
		t.Fatal("NaN after zero-distance repulsion")
	}
}

// --- Twinkle ---

func TestTwinkleStaysWithinBounds(t *testing.T) {
	p := testParticle()
	p.twinkle = 0.013
	// The reflecting oscillation may overshoot a bound by at most one
	// tick's delta before turning around.
	lo := opacityMin - p.twinkle - epsilon
	hi := opacityMax + p.twinkle + epsilon
	for i := 0; i < 10000; i++ {
		p.step(noPointer())
		if p.opacity < lo || p.opacity > hi {
			t.Fatalf("tick %d: opacity %f outside [%f, %f]", i, p.opacity, lo, hi)
		}
	}
}

func TestTwinkleReflectsAtBounds(t *testing.T) {
	p := testParticle()
	p.opacity = 0.99
	p.twinkle = 0.05
	p.step(noPointer()) // crosses 1.0
	if p.twinkle >= 0 {
		t.Error("twinkle should negate after crossing the upper bound")
	}
	p.opacity = 0.41
	p.step(noPointer()) // crosses 0.4 going down
	if p.twinkle <= 0 {
		t.Error("twinkle should negate after crossing the lower bound")
	}
}

func TestTwinkleIndependentOfMotion(t *testing.T) {
	moving := testParticle()
	still := testParticle()
	still.x, still.y = still.tx, still.ty
	for i := 0; i < 100; i++ {
		moving.step(noPointer())
		still.step(noPointer())
	}
	assertNear(t, "opacity", moving.opacity, still.opacity)
}
