package render

import (
	"image"
	"testing"
)

type sizedTexture struct{ w, h int }

func (t sizedTexture) Size() (int, int) { return t.w, t.h }

func (t sizedTexture) SubTexture(r image.Rectangle) Texture {
	return sizedTexture{w: r.Dx(), h: r.Dy()}
}

func TestDrawSize(t *testing.T) {
	tex := sizedTexture{w: 32, h: 48}
	cases := []struct {
		name  string
		opts  *DrawOptions
		wantW float64
		wantH float64
	}{
		{"nil_opts", nil, 32, 48},
		{"zero_opts", &DrawOptions{}, 32, 48},
		{"stretch_width", &DrawOptions{Width: 70}, 70, 48},
		{"stretch_both", &DrawOptions{Width: 70, Height: 4}, 70, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, h := DrawSize(tex, c.opts)
			if w != c.wantW || h != c.wantH {
				t.Fatalf("DrawSize = (%v, %v), want (%v, %v)", w, h, c.wantW, c.wantH)
			}
		})
	}
}
