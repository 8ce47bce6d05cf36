package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/clickwalk/assets"
	"github.com/milk9111/clickwalk/input"
	"github.com/milk9111/clickwalk/prefabs"
	ebitenrender "github.com/milk9111/clickwalk/render/ebiten"
	"github.com/milk9111/clickwalk/scene"
	"github.com/milk9111/clickwalk/sound"
)

// Options configures NewGame.
type Options struct {
	AssetDir  string
	SceneName string
	Debug     bool
	Watch     bool
}

type Game struct {
	opts   Options
	spec   prefabs.SceneSpec
	scene  *scene.Scene
	loader *ebitenrender.Loader

	poller input.Poller
	// holdPointer ignores the pointer until it is released, so the click that
	// closes the pause menu does not also move the character.
	holdPointer bool

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	muteBtn *widget.Button
	paused  bool
	quit    bool
	frames  int
}

// NewGame loads the scene, its textures and its music. Any missing asset is
// returned as an error.
func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadScene(opts.AssetDir, opts.SceneName)
	if err != nil {
		return nil, err
	}

	src := assets.Dir(opts.AssetDir)
	loader := ebitenrender.NewLoader(src)

	music, err := sound.LoadMusic(src, spec.Music.File, sound.Options{
		Volume: spec.Music.Volume,
		Loop:   spec.Music.Loop,
	})
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}

	sc, err := scene.New(spec, loader, music)
	if err != nil {
		_ = music.Close()
		loader.Dispose()
		return nil, err
	}

	g := &Game{
		opts:   opts,
		spec:   spec,
		scene:  sc,
		loader: loader,
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(opts.AssetDir)
		if err != nil {
			log.Printf("watch %s: %v (hot reload disabled)", opts.AssetDir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Title() string {
	if g.spec.Name == "" {
		return "clickwalk"
	}
	return g.spec.Name
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.reload()

	frame := g.poller.Poll(g.spec.Screen.Height)
	if frame.Mute {
		g.toggleMute()
	}
	if frame.Pause {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	pointer := frame.Pointer
	if g.holdPointer {
		if pointer.Touched {
			pointer.Touched = false
		} else {
			g.holdPointer = false
		}
	}

	g.scene.Update(pointer, 1/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(ebitenrender.NewScreen(screen))

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Screen.Width, g.spec.Screen.Height
}

func (g *Game) setPaused(paused bool) {
	if g.paused && !paused {
		g.holdPointer = true
	}
	g.paused = paused
}

func (g *Game) toggleMute() {
	muted := g.scene.ToggleMute()
	updateMuteLabel(g.muteBtn, muted)
}

// reload re-applies scene tuning after the scene file changes on disk.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Drain() {
		if !prefabs.SameFile(name, g.opts.SceneName) {
			continue
		}
		spec, err := prefabs.LoadScene(g.opts.AssetDir, g.opts.SceneName)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		err = g.scene.Apply(spec)
		switch {
		case errors.Is(err, scene.ErrAssetsChanged):
			log.Printf("reload %s: tuning applied, restart to load new images or music", name)
		case err != nil:
			log.Printf("reload %s: %v", name, err)
			continue
		default:
			log.Printf("reloaded %s", name)
		}
		g.spec = g.scene.Spec()
	}
}

func (g *Game) debugText() string {
	snap := g.scene.Snapshot()
	dir, idx := g.scene.CharacterFrame()
	return fmt.Sprintf("FPS: %.2f  TPS: %.2f  Frames: %d\nstate: %v  frame: %v/%d\npos: (%.1f, %.1f)  target: (%.1f, %.1f)\nclock: %.2fs",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.frames,
		snap.State, dir, idx,
		snap.Position.X, snap.Position.Y, snap.Target.X, snap.Target.Y,
		snap.Clock)
}

// Close stops the watcher and the music and frees textures.
func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.scene.Close())
	g.loader.Dispose()
	return errors.Join(errs...)
}
