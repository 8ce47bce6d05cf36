// Package render defines the drawing capabilities the scene depends on, so
// scene logic can run against any backend (or a fake in tests).
//
// All coordinates are world space: origin at the bottom-left of the screen,
// y growing upward. A texture drawn at (x, y) has its bottom-left corner there.
package render

import (
	"image"
	"image/color"
)

// Texture is a drawable image or a region of one.
type Texture interface {
	Size() (width, height int)
	// SubTexture returns the region r of the texture, in the texture's own
	// pixel coordinates (origin top-left, as stored on disk).
	SubTexture(r image.Rectangle) Texture
}

// TextureProvider loads textures by asset name.
type TextureProvider interface {
	Texture(name string) (Texture, error)
}

// DrawOptions adjusts a single texture draw.
type DrawOptions struct {
	// Width and Height stretch the texture. Zero keeps the native size.
	Width  float64
	Height float64
	// Tint multiplies the texture colour. Nil draws the texture unchanged.
	Tint color.Color
}

// Renderer draws onto the current frame.
type Renderer interface {
	Clear()
	DrawTexture(tex Texture, x, y float64, opts *DrawOptions)
}

// DrawSize resolves the on-screen size of tex under opts.
func DrawSize(tex Texture, opts *DrawOptions) (w, h float64) {
	tw, th := tex.Size()
	w, h = float64(tw), float64(th)
	if opts == nil {
		return w, h
	}
	if opts.Width > 0 {
		w = opts.Width
	}
	if opts.Height > 0 {
		h = opts.Height
	}
	return w, h
}
