package component

import (
	"fmt"
	"image"

	"github.com/milk9111/clickwalk/render"
)

// PlayMode controls what happens after the last frame of an Animation.
type PlayMode int

const (
	// PlayNormal holds the last frame.
	PlayNormal PlayMode = iota
	// PlayLoop wraps back to the first frame.
	PlayLoop
)

// Animation is a time-based key-frame clip. It holds no playback state: the
// caller owns the clock and asks for the frame at a given time.
type Animation struct {
	Frames []render.Texture
	// FrameDuration is how long each frame is shown, in seconds.
	FrameDuration float64
	Mode          PlayMode
}

// NewAnimation creates an Animation over frames.
func NewAnimation(frameDuration float64, mode PlayMode, frames ...render.Texture) *Animation {
	return &Animation{Frames: frames, FrameDuration: frameDuration, Mode: mode}
}

// KeyFrameIndex returns the frame index shown at stateTime seconds.
func (a *Animation) KeyFrameIndex(stateTime float64) int {
	if a == nil || len(a.Frames) <= 1 || a.FrameDuration <= 0 || stateTime <= 0 {
		return 0
	}
	idx := int(stateTime / a.FrameDuration)
	if a.Mode == PlayLoop {
		return idx % len(a.Frames)
	}
	if idx >= len(a.Frames) {
		return len(a.Frames) - 1
	}
	return idx
}

// KeyFrame returns the frame shown at stateTime seconds, or nil for an empty clip.
func (a *Animation) KeyFrame(stateTime float64) render.Texture {
	if a == nil || len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.KeyFrameIndex(stateTime)]
}

// First returns the first frame, or nil for an empty clip.
func (a *Animation) First() render.Texture {
	if a == nil || len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[0]
}

// Size returns the size of the first frame.
func (a *Animation) Size() (int, int) {
	first := a.First()
	if first == nil {
		return 0, 0
	}
	return first.Size()
}

// SplitSheet slices a sprite sheet into a rows x cols grid of equally sized
// frames, laid out left-to-right, top-to-bottom. Leftover pixels on the right
// and bottom edges are ignored.
func SplitSheet(sheet render.Texture, cols, rows int) ([][]render.Texture, error) {
	if sheet == nil {
		return nil, fmt.Errorf("split sheet: nil sheet")
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("split sheet: invalid grid %dx%d", cols, rows)
	}
	w, h := sheet.Size()
	frameW, frameH := w/cols, h/rows
	if frameW == 0 || frameH == 0 {
		return nil, fmt.Errorf("split sheet: %dx%d sheet too small for %dx%d grid", w, h, cols, rows)
	}

	grid := make([][]render.Texture, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]render.Texture, cols)
		for col := 0; col < cols; col++ {
			sx, sy := col*frameW, row*frameH
			grid[row][col] = sheet.SubTexture(image.Rect(sx, sy, sx+frameW, sy+frameH))
		}
	}
	return grid, nil
}
