// Package input turns mouse, touch and gamepad state into per-frame input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/clickwalk/motion"
)

// Frame is everything read from the devices in one update.
type Frame struct {
	Pointer motion.Input
	Pause   bool
	Mute    bool
}

// Poller reads device state. The zero value is ready to use.
type Poller struct {
	touches []ebiten.TouchID
}

// Poll reads this frame's input. screenHeight is the logical screen height,
// used to flip pointer coordinates into world space.
func (p *Poller) Poll(screenHeight int) Frame {
	var f Frame
	if x, y, ok := p.pointer(); ok {
		f.Pointer = motion.Input{
			Touched: true,
			Point:   FromScreen(float64(x), float64(y), screenHeight),
		}
	}

	f.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	f.Mute = inpututil.IsKeyJustPressed(ebiten.KeyM)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			f.Pause = true
		}
	}
	return f
}

// pointer returns the active pointer position in screen space. The first
// touch wins over the mouse; the mouse counts only while its left button is
// held.
func (p *Poller) pointer() (int, int, bool) {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		x, y := ebiten.TouchPosition(p.touches[0])
		return x, y, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

// FromScreen converts screen coordinates (origin top-left) to world space
// (origin bottom-left).
func FromScreen(x, y float64, screenHeight int) motion.Vec {
	return motion.Vec{X: x, Y: float64(screenHeight) - y}
}
