package glimmer

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// testRNG returns a deterministic random source for reproducible tests.
func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fakeRaster returns a canned mask (or error) regardless of the text, for
// sampler tests that need exact control over coverage.
type fakeRaster struct {
	mask *image.Alpha
	err  error
}

func (f *fakeRaster) Rasterize(text string, w, h int) (*image.Alpha, error) {
	return f.mask, f.err
}

// blobMask builds a w-by-h mask that is fully covered inside blob and
// transparent elsewhere.
func blobMask(w, h int, blob image.Rectangle) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := blob.Min.Y; y < blob.Max.Y; y++ {
		for x := blob.Min.X; x < blob.Max.X; x++ {
			m.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return m
}

// --- Range ---

func TestRangeRandom(t *testing.T) {
	rng := testRNG(1)
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Random(rng)
		if v < 10 || v > 20 {
			t.Fatalf("Random() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Random(rng) != 5 {
			t.Fatal("Random() with Min==Max should return Min")
		}
	}
}

// --- lerp / clamp01 ---

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
}

func TestClamp01(t *testing.T) {
	assertNear(t, "clamp01(-1)", clamp01(-1), 0)
	assertNear(t, "clamp01(0.3)", clamp01(0.3), 0.3)
	assertNear(t, "clamp01(2)", clamp01(2), 1)
}

// --- Color ---

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.toRGBA()
	if got.R != 127 {
		t.Errorf("R = %d, want 127 (premultiplied)", got.R)
	}
	if got.G != 63 {
		t.Errorf("G = %d, want 63 (premultiplied)", got.G)
	}
	if got.B != 0 {
		t.Errorf("B = %d, want 0", got.B)
	}
	if got.A != 127 {
		t.Errorf("A = %d, want 127", got.A)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{R: 1, G: 1, B: 1, A: 0.8}
	got := c.WithAlpha(0.5)
	assertNear(t, "A", got.A, 0.4)
	assertNear(t, "R", got.R, 1) // only alpha changes
}

func TestColorRGBAInterface(t *testing.T) {
	r, g, b, a := colorRGBA{255, 128, 0, 255}.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}
