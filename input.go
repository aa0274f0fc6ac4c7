package glimmer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is the bridge the loop reads each tick: the current shape
// text and the pointer position. The loop calls Poll once per tick before
// reading, so implementations can batch host events.
type InputSource interface {
	Poll()
	Text() string
	// Pointer returns the pointer position in viewport pixels. ok is false
	// when there is no pointer to react to.
	Pointer() (x, y float64, ok bool)
}

// Key repeat: first delete on press, then one every repeatInterval ticks
// once the key has been held for repeatDelay ticks.
const (
	repeatDelay    = 20
	repeatInterval = 4
)

// KeyboardInput is the default InputSource: typed characters append to the
// text, Backspace deletes (with key repeat), Escape clears, and the mouse
// cursor is the pointer.
type KeyboardInput struct {
	runes []rune
	buf   []rune // scratch for AppendInputChars
}

// NewKeyboardInput creates a KeyboardInput with empty text.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll consumes this tick's typed characters and editing keys.
func (k *KeyboardInput) Poll() {
	k.buf = ebiten.AppendInputChars(k.buf[:0])
	for _, r := range k.buf {
		if r >= ' ' {
			k.runes = append(k.runes, r)
		}
	}
	if repeatTriggered(ebiten.KeyBackspace) && len(k.runes) > 0 {
		k.runes = k.runes[:len(k.runes)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.runes = k.runes[:0]
	}
}

// Text returns the accumulated text.
func (k *KeyboardInput) Text() string {
	return string(k.runes)
}

// SetText replaces the accumulated text, e.g. to seed an initial phrase.
func (k *KeyboardInput) SetText(s string) {
	k.runes = append(k.runes[:0], []rune(s)...)
}

// Pointer returns the mouse cursor position. ok is false while the cursor
// is outside the window.
func (k *KeyboardInput) Pointer() (x, y float64, ok bool) {
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 {
		return 0, 0, false
	}
	return float64(cx), float64(cy), true
}

// repeatTriggered reports whether a held key should fire this tick.
func repeatTriggered(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
