package glimmer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// introDuration is how long the presented canvas fades in after start,
// in seconds.
const introDuration = 1.2

// Loop is the free-running simulation loop. It implements [ebiten.Game]:
// each tick it polls the input bridge, advances the field by one nominal
// step, paints a low-alpha black rectangle over a persistent offscreen
// canvas (motion trails rather than a hard clear), and draws every particle.
//
// Physics is not delta-time corrected; a delayed tick still advances one
// nominal step, so perceived speed follows the achieved tick rate.
type Loop struct {
	field *Field
	input InputSource

	canvas *ebiten.Image // persists between frames to accumulate trails
	white  *ebiten.Image // 1x1, tinted per draw for the fade rect

	intro      *gween.Tween
	introAlpha float32

	stopped bool
}

// NewLoop creates a loop over the given field. input may be nil when text
// and pointer are fed to the field directly.
func NewLoop(field *Field, input InputSource) *Loop {
	return &Loop{
		field: field,
		input: input,
		intro: gween.New(0, 1, introDuration, ease.OutQuad),
	}
}

// Field returns the loop's field.
func (l *Loop) Field() *Field {
	return l.field
}

// Stop tears the loop down: the next Update returns [ebiten.Termination]
// and no further tick executes.
func (l *Loop) Stop() {
	l.stopped = true
}

// Update polls input, forwards it to the field, and advances one tick.
func (l *Loop) Update() error {
	if l.stopped {
		return ebiten.Termination
	}

	if l.input != nil {
		l.input.Poll()
		l.field.SetText(l.input.Text())
		if x, y, ok := l.input.Pointer(); ok {
			l.field.SetPointer(x, y)
		} else {
			l.field.ClearPointer()
		}
	}

	if l.field.Ready() {
		l.field.Step()
	}

	if l.intro != nil {
		v, done := l.intro.Update(1.0 / float32(ebiten.TPS()))
		l.introAlpha = v
		if done {
			l.intro = nil
		}
	}
	return nil
}

// Draw fades the trail canvas, draws the field onto it, and presents it.
func (l *Loop) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	l.ensureCanvas(w, h)

	// Fade pass: a translucent black rect over the whole canvas.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.Scale(0, 0, 0, float32(l.field.cfg.FadeAlpha))
	l.canvas.DrawImage(l.white, op)

	l.field.Draw(l.canvas)

	present := &ebiten.DrawImageOptions{}
	present.ColorScale.ScaleAlpha(l.introAlpha)
	screen.DrawImage(l.canvas, present)

	if l.field.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout forwards viewport dimensions to the field; the first valid size
// constructs the population, later changes retarget it.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	l.field.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// ensureCanvas (re)creates the trail canvas when the viewport size changes.
func (l *Loop) ensureCanvas(w, h int) {
	if l.white == nil {
		l.white = ebiten.NewImage(1, 1)
		l.white.Fill(ColorWhite.toRGBA())
	}
	if l.canvas != nil {
		b := l.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		l.canvas.Deallocate()
	}
	l.canvas = ebiten.NewImage(w, h)
	l.canvas.Fill(Color{0, 0, 0, 1}.toRGBA())
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a resizable window and drives the loop until it stops or the
// window closes. For full control over the window, call [Loop.Update],
// [Loop.Draw], and [Loop.Layout] from your own [ebiten.Game] instead.
func Run(l *Loop, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(l); err != nil && err != ebiten.Termination {
		return fmt.Errorf("glimmer: game loop: %w", err)
	}
	return nil
}
