package component

import (
	"image"
	"testing"

	"github.com/milk9111/clickwalk/render"
)

type fakeTexture struct {
	rect image.Rectangle
}

func (f *fakeTexture) Size() (int, int) { return f.rect.Dx(), f.rect.Dy() }

func (f *fakeTexture) SubTexture(r image.Rectangle) render.Texture {
	return &fakeTexture{rect: r.Add(f.rect.Min)}
}

func frames(n int) []render.Texture {
	out := make([]render.Texture, n)
	for i := range out {
		out[i] = &fakeTexture{rect: image.Rect(i*10, 0, i*10+10, 10)}
	}
	return out
}

func TestAnimationKeyFrameIndex(t *testing.T) {
	loop := NewAnimation(0.1, PlayLoop, frames(9)...)
	normal := NewAnimation(0.1, PlayNormal, frames(4)...)

	cases := []struct {
		name string
		anim *Animation
		time float64
		want int
	}{
		{"loop_start", loop, 0, 0},
		{"loop_mid_frame", loop, 0.25, 2},
		{"loop_last", loop, 0.85, 8},
		{"loop_wraps", loop, 0.95, 0},
		{"loop_wraps_twice", loop, 1.95, 1},
		{"normal_holds_last", normal, 5, 3},
		{"negative_time", loop, -1, 0},
		{"nil_anim", nil, 1, 0},
		{"zero_duration", NewAnimation(0, PlayLoop, frames(3)...), 1, 0},
		{"single_frame", NewAnimation(0.1, PlayLoop, frames(1)...), 7, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.anim.KeyFrameIndex(c.time); got != c.want {
				t.Fatalf("KeyFrameIndex(%v) = %d, want %d", c.time, got, c.want)
			}
		})
	}
}

func TestAnimationKeyFrameAndFirst(t *testing.T) {
	fs := frames(4)
	anim := NewAnimation(0.1, PlayLoop, fs...)
	if anim.First() != fs[0] {
		t.Fatalf("First returned wrong frame")
	}
	if anim.KeyFrame(0.35) != fs[3] {
		t.Fatalf("KeyFrame(0.35) returned wrong frame")
	}
	if w, h := anim.Size(); w != 10 || h != 10 {
		t.Fatalf("Size = %dx%d, want 10x10", w, h)
	}

	var empty Animation
	if empty.First() != nil || empty.KeyFrame(1) != nil {
		t.Fatalf("empty animation should have no frames")
	}
}

func TestSplitSheet(t *testing.T) {
	sheet := &fakeTexture{rect: image.Rect(0, 0, 576, 256)}
	grid, err := SplitSheet(sheet, 9, 4)
	if err != nil {
		t.Fatalf("SplitSheet: %v", err)
	}
	if len(grid) != 4 {
		t.Fatalf("rows = %d, want 4", len(grid))
	}
	for row := range grid {
		if len(grid[row]) != 9 {
			t.Fatalf("row %d has %d frames, want 9", row, len(grid[row]))
		}
	}
	got := grid[2][5].(*fakeTexture).rect
	want := image.Rect(320, 128, 384, 192)
	if got != want {
		t.Fatalf("frame [2][5] = %v, want %v", got, want)
	}
}

func TestSplitSheetErrors(t *testing.T) {
	cases := []struct {
		name       string
		sheet      render.Texture
		cols, rows int
	}{
		{"nil_sheet", nil, 4, 1},
		{"zero_cols", &fakeTexture{rect: image.Rect(0, 0, 64, 64)}, 0, 1},
		{"negative_rows", &fakeTexture{rect: image.Rect(0, 0, 64, 64)}, 1, -2},
		{"too_small", &fakeTexture{rect: image.Rect(0, 0, 3, 3)}, 4, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := SplitSheet(c.sheet, c.cols, c.rows); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestMeter(t *testing.T) {
	m := NewMeter(50)
	if m.Fraction() != 1 {
		t.Fatalf("new meter fraction = %v, want 1", m.Fraction())
	}
	m.Set(25)
	if m.Fraction() != 0.5 {
		t.Fatalf("fraction = %v, want 0.5", m.Fraction())
	}
	m.Set(-5)
	if m.Current != 0 || m.Fraction() != 0 {
		t.Fatalf("Set(-5) left %v", m.Current)
	}
	m.Set(500)
	if m.Current != 50 {
		t.Fatalf("Set(500) left %v, want clamp to 50", m.Current)
	}
	if NewMeter(0).Max != 1 {
		t.Fatalf("non-positive max should default to 1")
	}
	var nilMeter *Meter
	if nilMeter.Fraction() != 0 {
		t.Fatalf("nil meter fraction should be 0")
	}
}
