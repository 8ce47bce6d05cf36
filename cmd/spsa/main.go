package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/clickwalk/assets"
	"github.com/milk9111/clickwalk/component"
	"github.com/milk9111/clickwalk/prefabs"
	ebitenrender "github.com/milk9111/clickwalk/render/ebiten"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// previewGame loops every row of a sprite sheet side by side.
type previewGame struct {
	title string
	clips []*component.Animation
	scale float64
	t     float64
}

func (g *previewGame) Update() error {
	g.t += 1 / float64(ebiten.TPS())
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	x := 16.0
	for _, clip := range g.clips {
		tex, ok := clip.KeyFrame(g.t).(*ebitenrender.Texture)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.scale, g.scale)
		op.GeoM.Translate(x, 32)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(tex.Image(), op)

		w, _ := clip.Size()
		x += float64(w)*g.scale + 16
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d", g.title, g.clips[0].KeyFrameIndex(g.t)))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadClips(src *assets.Source, name string, cols, rows int, frameDuration float64) ([]*component.Animation, error) {
	loader := ebitenrender.NewLoader(src)
	sheet, err := loader.Texture(name)
	if err != nil {
		return nil, err
	}
	grid, err := component.SplitSheet(sheet, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	clips := make([]*component.Animation, 0, len(grid))
	for _, row := range grid {
		clips = append(clips, component.NewAnimation(frameDuration, component.PlayLoop, row...))
	}
	return clips, nil
}

func main() {
	assetDir := flag.String("assets", assets.DefaultDir, "asset directory")
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene file to read the sheet layout from")
	which := flag.String("sheet", "character", "sheet to preview: character or monster")
	scale := flag.Float64("scale", 1, "draw scale")
	flag.Parse()

	spec, err := prefabs.LoadScene(*assetDir, *sceneName)
	if err != nil {
		log.Fatalf("spsa: %v", err)
	}

	var (
		name       string
		cols, rows int
		duration   float64
	)
	switch *which {
	case "character":
		name, cols, rows, duration = spec.Character.Sheet, spec.Character.Cols, spec.Character.Rows, spec.Character.FrameDuration
	case "monster":
		name, cols, rows, duration = spec.Monster.Sheet, spec.Monster.Cols, 1, spec.Monster.FrameDuration
	default:
		log.Fatalf("spsa: unknown sheet %q", *which)
	}

	clips, err := loadClips(assets.Dir(*assetDir), name, cols, rows, duration)
	if err != nil {
		log.Fatalf("spsa: %v", err)
	}
	if len(clips) == 0 {
		log.Fatalf("spsa: %s has no frames", name)
	}

	g := &previewGame{title: name, clips: clips, scale: *scale}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
