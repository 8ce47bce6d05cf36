package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/clickwalk/assets"
	"github.com/milk9111/clickwalk/prefabs"
)

func main() {
	assetDir := flag.String("assets", assets.DefaultDir, "directory holding the images, music and scene overrides")
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene file, looked up in the assets directory before the embedded copy")
	debug := flag.Bool("debug", false, "enable debug overlay")
	watch := flag.Bool("watch", false, "re-apply scene tuning when the scene file changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		AssetDir:  *assetDir,
		SceneName: *sceneName,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
