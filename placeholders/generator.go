// Package placeholders generates stand-in art and music so the demo runs
// without the real assets.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/milk9111/clickwalk/common"
)

// FrameSize is the edge length of one sprite frame.
const FrameSize = 64

// ColorPalette holds the placeholder colours.
var ColorPalette = struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Ground    color.RGBA
	GridLine  color.RGBA

	Skin  color.RGBA
	Legs  color.RGBA
	Eye   color.RGBA
	Rows  [4]color.RGBA
	Metal color.RGBA
	Shine color.RGBA
	White color.RGBA
}{
	SkyTop:    color.RGBA{60, 90, 140, 255},
	SkyBottom: color.RGBA{150, 180, 210, 255},
	Ground:    color.RGBA{70, 110, 60, 255},
	GridLine:  color.RGBA{60, 95, 52, 255},

	Skin:  color.RGBA{240, 200, 160, 255},
	Legs:  color.RGBA{50, 50, 80, 255},
	Eye:   color.RGBA{20, 20, 20, 255},
	Metal: color.RGBA{150, 160, 175, 255},
	Shine: color.RGBA{230, 235, 245, 255},
	White: color.RGBA{255, 255, 255, 255},
	// Tunic colour per sheet row: down, right, left, up.
	Rows: [4]color.RGBA{
		{200, 60, 60, 255},
		{60, 160, 80, 255},
		{60, 100, 200, 255},
		{200, 160, 40, 255},
	},
}

// Image sizes written by GenerateAndSave.
const (
	BackgroundWidth  = 1337
	BackgroundHeight = 730
	CharacterCols    = 9
	CharacterRows    = 4
	MonsterCols      = 4
	ShadowWidth      = 48
	ShadowHeight     = 14
)

// Background draws a sky gradient over a gridded ground plane.
func Background() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BackgroundWidth, BackgroundHeight))
	horizon := BackgroundHeight / 3
	for y := 0; y < BackgroundHeight; y++ {
		var c color.RGBA
		if y < horizon {
			c = lerpColor(ColorPalette.SkyTop, ColorPalette.SkyBottom, float64(y)/float64(horizon))
		} else {
			c = ColorPalette.Ground
			if (y-horizon)%48 == 0 {
				c = ColorPalette.GridLine
			}
		}
		for x := 0; x < BackgroundWidth; x++ {
			if y >= horizon && x%48 == 0 {
				img.SetRGBA(x, y, ColorPalette.GridLine)
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// CharacterSheet draws a 9x4 walk sheet. Row order is down, right, left, up;
// each row swings the legs through one stride.
func CharacterSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CharacterCols*FrameSize, CharacterRows*FrameSize))
	for row := 0; row < CharacterRows; row++ {
		for col := 0; col < CharacterCols; col++ {
			drawCharacterFrame(img, col*FrameSize, row*FrameSize, row, col)
		}
	}
	return img
}

func drawCharacterFrame(img *image.RGBA, ox, oy, row, col int) {
	swing := int(math.Round(6 * math.Sin(2*math.Pi*float64(col)/CharacterCols)))
	cx := ox + FrameSize/2

	// legs
	fillRect(img, cx-8+swing, oy+44, 6, 18, ColorPalette.Legs)
	fillRect(img, cx+2-swing, oy+44, 6, 18, ColorPalette.Legs)
	// tunic
	fillRect(img, cx-12, oy+24, 24, 22, ColorPalette.Rows[row])
	// head
	fillCircle(img, cx, oy+14, 10, ColorPalette.Skin)

	switch row {
	case 0: // facing the viewer
		fillRect(img, cx-5, oy+12, 2, 3, ColorPalette.Eye)
		fillRect(img, cx+3, oy+12, 2, 3, ColorPalette.Eye)
	case 1:
		fillRect(img, cx+5, oy+12, 2, 3, ColorPalette.Eye)
	case 2:
		fillRect(img, cx-7, oy+12, 2, 3, ColorPalette.Eye)
	case 3: // back of the head
		fillRect(img, cx-8, oy+6, 16, 4, ColorPalette.Legs)
	}
}

// MonsterSheet draws a 4-frame idle loop of a bobbing metal blob.
func MonsterSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, MonsterCols*FrameSize, FrameSize))
	for col := 0; col < MonsterCols; col++ {
		ox := col * FrameSize
		bob := []int{0, 2, 3, 2}[col]
		fillEllipse(img, ox+FrameSize/2, FrameSize-22+bob, 24, 18-bob, ColorPalette.Metal)
		fillCircle(img, ox+FrameSize/2-8, FrameSize-30+bob, 4, ColorPalette.Shine)
	}
	return img
}

// Shadow draws an opaque ellipse. The scene tints it when drawing.
func Shadow() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ShadowWidth, ShadowHeight))
	fillEllipse(img, ShadowWidth/2, ShadowHeight/2, ShadowWidth/2, ShadowHeight/2, ColorPalette.White)
	return img
}

// Pixel is a single white pixel, stretched and tinted for the status bars.
func Pixel() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, ColorPalette.White)
	return img
}

// Images returns every placeholder image keyed by the file name the default
// scene expects.
func Images() map[string]image.Image {
	return map[string]image.Image{
		"background.png": Background(),
		"character.png":  CharacterSheet(),
		"metaling.png":   MonsterSheet(),
		"shadow.png":     Shadow(),
		"pixel.png":      Pixel(),
	}
}

// SavePNG writes img to path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SceneOverride points the default scene at the generated wav track.
const SceneOverride = `# Generated by genassets: the placeholder music is a wav file.
music:
  file: ` + MusicFile + `
`

// GenerateAndSave writes all placeholder images, the music track and a scene
// override into dir, creating it if needed. It returns the written paths.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for name, img := range Images() {
		path := filepath.Join(dir, name)
		if err := SavePNG(img, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	musicPath := filepath.Join(dir, MusicFile)
	if err := WriteMusic(musicPath, MusicDuration); err != nil {
		return written, err
	}
	written = append(written, musicPath)

	scenePath := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scenePath, []byte(SceneOverride), 0o644); err != nil {
		return written, err
	}
	written = append(written, scenePath)
	return written, nil
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), &image.Uniform{c}, image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	fillEllipse(img, cx, cy, r, r, c)
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := -ry; y <= ry; y++ {
		for x := -rx; x <= rx; x++ {
			dx := float64(x) / float64(rx)
			dy := float64(y) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				px, py := cx+x, cy+y
				if image.Pt(px, py).In(img.Bounds()) {
					img.SetRGBA(px, py, c)
				}
			}
		}
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(common.Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
