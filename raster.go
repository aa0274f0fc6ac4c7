package glimmer

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Rasterizer renders a line of text into an alpha coverage mask of the given
// viewport size. Any platform text facility that can produce a coverage grid
// satisfies it; the shape sampler is independent of how the mask was made.
type Rasterizer interface {
	Rasterize(text string, w, h int) (*image.Alpha, error)
}

// glyphWidthFill is the fraction of the viewport width the rendered text may
// occupy before the font size is shrunk to fit.
const glyphWidthFill = 0.9

// minGlyphSize is the smallest font size the fit computation will shrink to.
const minGlyphSize = 8.0

// GlyphRasterizer renders uppercased text to an alpha mask using a TrueType
// or OpenType font rasterized on the CPU. The font size starts at the base
// size and shrinks proportionally so longer strings still fit the viewport.
type GlyphRasterizer struct {
	font     *sfnt.Font
	baseSize float64
}

// NewGlyphRasterizer parses raw TTF/OTF data. baseSize is the maximum font
// size; it is capped, never exceeded.
func NewGlyphRasterizer(ttfData []byte, baseSize float64) (*GlyphRasterizer, error) {
	if baseSize <= 0 {
		return nil, fmt.Errorf("glimmer: base font size must be positive, got %g", baseSize)
	}
	f, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("glimmer: failed to parse font data: %w", err)
	}
	return &GlyphRasterizer{font: f, baseSize: baseSize}, nil
}

// Rasterize renders strings.ToUpper(text) into a w-by-h alpha mask, roughly
// centered. Exact placement does not matter to callers; the sampler centers
// the scanned candidate set itself.
func (g *GlyphRasterizer) Rasterize(text string, w, h int) (*image.Alpha, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("glimmer: cannot rasterize into degenerate viewport %dx%d", w, h)
	}
	s := strings.ToUpper(text)

	face, width, err := g.fitFace(s, float64(w))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	m := face.Metrics()
	baseline := (h + (m.Ascent - m.Descent).Ceil()) / 2
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(w/2) - width/2,
			Y: fixed.I(baseline),
		},
	}
	d.DrawString(s)
	return mask, nil
}

// fitFace returns a face sized so s spans at most glyphWidthFill of maxW,
// along with the string's advance width at that size.
func (g *GlyphRasterizer) fitFace(s string, maxW float64) (font.Face, fixed.Int26_6, error) {
	size := g.baseSize
	face, err := g.newFace(size)
	if err != nil {
		return nil, 0, err
	}

	width := font.MeasureString(face, s)
	limit := maxW * glyphWidthFill
	if wpx := float64(width) / 64; wpx > limit && wpx > 0 {
		size = size * limit / wpx
		if size < minGlyphSize {
			size = minGlyphSize
		}
		face.Close()
		if face, err = g.newFace(size); err != nil {
			return nil, 0, err
		}
		width = font.MeasureString(face, s)
	}
	return face, width, nil
}

func (g *GlyphRasterizer) newFace(size float64) (font.Face, error) {
	face, err := opentype.NewFace(g.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glimmer: failed to create %gpt face: %w", size, err)
	}
	return face, nil
}
