// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/clickwalk/assets"
	"github.com/milk9111/clickwalk/render"
)

// Texture wraps an *ebiten.Image.
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps img.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Size returns the width and height of the texture.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// SubTexture returns the region r, relative to the texture's own top-left.
func (t *Texture) SubTexture(r image.Rectangle) render.Texture {
	r = r.Add(t.img.Bounds().Min).Intersect(t.img.Bounds())
	return &Texture{img: t.img.SubImage(r).(*ebiten.Image)}
}

// Image returns the underlying ebiten image.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Loader implements render.TextureProvider over an asset source. Textures are
// decoded once and cached by name.
type Loader struct {
	src    *assets.Source
	images map[string]*Texture
}

// NewLoader creates a Loader reading from src.
func NewLoader(src *assets.Source) *Loader {
	return &Loader{src: src, images: map[string]*Texture{}}
}

// Texture loads (or returns the cached) texture for name.
func (l *Loader) Texture(name string) (render.Texture, error) {
	if name == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if tex, ok := l.images[name]; ok {
		return tex, nil
	}
	img, err := l.src.LoadImage(name)
	if err != nil {
		return nil, err
	}
	tex := NewTexture(ebiten.NewImageFromImage(img))
	l.images[name] = tex
	return tex, nil
}

// Dispose releases every cached texture.
func (l *Loader) Dispose() {
	for key, tex := range l.images {
		tex.img.Deallocate()
		delete(l.images, key)
	}
}

// Screen implements render.Renderer for one frame's destination image. It
// converts world space (bottom-left origin) to Ebiten's top-left origin.
type Screen struct {
	dst    *ebiten.Image
	height float64
}

// NewScreen wraps dst for the current frame.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst, height: float64(dst.Bounds().Dy())}
}

// Clear clears the frame to transparent black.
func (s *Screen) Clear() {
	s.dst.Clear()
}

// DrawTexture draws tex with its bottom-left corner at world (x, y).
func (s *Screen) DrawTexture(tex render.Texture, x, y float64, opts *render.DrawOptions) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return
	}
	tw, th := t.Size()
	if tw == 0 || th == 0 {
		return
	}
	w, h := render.DrawSize(tex, opts)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(w/float64(tw), h/float64(th))
	op.GeoM.Translate(x, flipY(s.height, y, h))
	if opts != nil && opts.Tint != nil {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}
	s.dst.DrawImage(t.img, op)
}

// flipY converts the bottom edge y of a box of height h in world space into
// the top edge in screen space.
func flipY(screenHeight, y, h float64) float64 {
	return screenHeight - y - h
}
