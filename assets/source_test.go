package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"character.png", "character.png"},
		{"assets/character.png", "character.png"},
		{"./assets/sheets/metaling.png", "sheets/metaling.png"},
		{"/home/dev/game/assets/sheets/metaling.png", "sheets/metaling.png"},
		{"/tmp/background.png", "background.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSourceLoadImage(t *testing.T) {
	src := FromFS(fstest.MapFS{
		"character.png": {Data: pngBytes(t, 36, 16)},
		"broken.png":    {Data: []byte("not a png")},
	})

	img, err := src.LoadImage("assets/character.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 36 || b.Dy() != 16 {
		t.Fatalf("bounds = %v, want 36x16", b)
	}

	if _, err := src.LoadImage("missing.png"); !IsNotExist(err) {
		t.Fatalf("missing asset error = %v, want not-exist", err)
	}
	if _, err := src.LoadImage("broken.png"); err == nil || IsNotExist(err) {
		t.Fatalf("broken asset error = %v, want decode error", err)
	}
}

func TestSourceExists(t *testing.T) {
	src := FromFS(fstest.MapFS{"bgMusic.mp3": {Data: []byte{1, 2, 3}}})
	if !src.Exists("bgMusic.mp3") {
		t.Fatalf("expected bgMusic.mp3 to exist")
	}
	if src.Exists("bgMusic.ogg") {
		t.Fatalf("did not expect bgMusic.ogg to exist")
	}
	var nilSrc *Source
	if nilSrc.Exists("x") {
		t.Fatalf("nil source should report nothing")
	}
}
