package glimmer

import (
	"image"
	"math"
	"math/rand/v2"
	"strings"
)

// Sampler maps a shape request (empty text means the heart curve, anything
// else a rasterized glyph mask) plus a viewport size to an ordered sequence
// of target points, exactly Config.ParticleCount of them per call.
type Sampler struct {
	cfg    Config
	raster Rasterizer
	rng    *rand.Rand
}

// NewSampler creates a sampler. raster may be nil, in which case text
// requests always fall back to the heart shape.
func NewSampler(cfg Config, raster Rasterizer, rng *rand.Rand) *Sampler {
	return &Sampler{cfg: cfg, raster: raster, rng: rng}
}

// Targets returns the target point sequence for the given text and viewport.
// Whitespace-only text, a missing rasterizer, a rasterization failure, and a
// mask with zero qualifying coverage all fall back to the heart shape, so
// every slot always receives a valid target.
func (s *Sampler) Targets(text string, w, h int) []Vec2 {
	if strings.TrimSpace(text) == "" || s.raster == nil {
		return s.heartTargets(w, h)
	}
	if pts := s.textTargets(text, w, h); pts != nil {
		return pts
	}
	return s.heartTargets(w, h)
}

// heartTargets fills the heart parametric curve. The parameter is drawn
// uniformly at random per point rather than evenly spaced, which fills the
// outline densely and organically instead of tracing it.
func (s *Sampler) heartTargets(w, h int) []Vec2 {
	cx := float64(w) / 2
	cy := float64(h) / 2
	scale := s.cfg.HeartScale

	pts := make([]Vec2, s.cfg.ParticleCount)
	for i := range pts {
		t := s.rng.Float64() * 2 * math.Pi
		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		pts[i] = Vec2{X: cx + x*scale, Y: cy + y*scale}
	}
	return pts
}

// textTargets rasterizes the text and samples the coverage mask. Returns nil
// when the mask yields no qualifying cells so the caller can fall back.
func (s *Sampler) textTargets(text string, w, h int) []Vec2 {
	mask, err := s.raster.Rasterize(text, w, h)
	if err != nil {
		return nil
	}

	cands, bounds := s.scanMask(mask, w, h)
	if len(cands) == 0 {
		return nil
	}

	// Center the candidate bounding box in the viewport, independent of where
	// the rasterizer placed the glyphs.
	offX := (float64(w)-(bounds.Max.X-bounds.Min.X))/2 - bounds.Min.X
	offY := (float64(h)-(bounds.Max.Y-bounds.Min.Y))/2 - bounds.Min.Y

	// Sample with replacement: a fixed particle budget must cover shapes of
	// wildly varying pixel coverage. Jitter keeps particles that drew the
	// same cell from stacking exactly.
	jitter := s.cfg.Jitter
	pts := make([]Vec2, s.cfg.ParticleCount)
	for i := range pts {
		c := cands[s.rng.IntN(len(cands))]
		pts[i] = Vec2{
			X: c.X + offX + (s.rng.Float64()*2-1)*jitter,
			Y: c.Y + offY + (s.rng.Float64()*2-1)*jitter,
		}
	}
	return pts
}

type bbox struct {
	Min, Max Vec2
}

// scanMask walks the mask on the configured stride and collects every cell
// whose alpha exceeds the coverage threshold, tracking the bounding box as
// it accumulates.
func (s *Sampler) scanMask(mask *image.Alpha, w, h int) ([]Vec2, bbox) {
	stride := s.cfg.SampleStride
	threshold := s.cfg.CoverageThreshold

	var cands []Vec2
	b := bbox{
		Min: Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			if mask.AlphaAt(x, y).A <= threshold {
				continue
			}
			fx, fy := float64(x), float64(y)
			cands = append(cands, Vec2{X: fx, Y: fy})
			b.Min.X = math.Min(b.Min.X, fx)
			b.Min.Y = math.Min(b.Min.Y, fy)
			b.Max.X = math.Max(b.Max.X, fx)
			b.Max.Y = math.Max(b.Max.Y, fy)
		}
	}
	return cands, b
}
