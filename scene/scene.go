// Package scene is the click-to-move demo: one walking character, one idle
// monster, a background, shadows and two mock status bars.
package scene

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/clickwalk/component"
	"github.com/milk9111/clickwalk/motion"
	"github.com/milk9111/clickwalk/prefabs"
	"github.com/milk9111/clickwalk/render"
	"github.com/milk9111/clickwalk/sound"
)

// ErrAssetsChanged is returned by Apply when the new spec names different
// images or sheet layouts. Tuning values are still applied; the textures stay
// as loaded at startup.
var ErrAssetsChanged = errors.New("scene: image changes need a restart")

type bar struct {
	name  string
	tex   render.Texture
	tint  color.Color
	meter *component.Meter
	spec  prefabs.BarSpec
}

// Scene owns all per-process demo state. It is not safe for concurrent use;
// the game loop drives it from a single goroutine.
type Scene struct {
	spec  prefabs.SceneSpec
	cfg   motion.Config
	state motion.Snapshot

	background render.Texture
	shadow     render.Texture
	shadowTint color.Color
	// walks is indexed by motion.Direction (down, right, left, up).
	walks   [4]*component.Animation
	monster *component.Animation
	bars    []*bar

	music sound.Player
	mute  *sound.Mute
}

// New loads every texture the spec names and starts the music. A missing or
// malformed asset is returned as an error.
func New(spec prefabs.SceneSpec, textures render.TextureProvider, music sound.Player) (*Scene, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &Scene{music: music, mute: sound.NewMute(music)}

	load := func(name string) (render.Texture, error) {
		tex, err := textures.Texture(name)
		if err != nil {
			return nil, fmt.Errorf("scene: load %s: %w", name, err)
		}
		return tex, nil
	}

	var err error
	if s.background, err = load(spec.Background.Image); err != nil {
		return nil, err
	}
	if s.shadow, err = load(spec.Shadow.Image); err != nil {
		return nil, err
	}

	sheet, err := load(spec.Character.Sheet)
	if err != nil {
		return nil, err
	}
	grid, err := component.SplitSheet(sheet, spec.Character.Cols, spec.Character.Rows)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", spec.Character.Sheet, err)
	}
	for dir := range s.walks {
		s.walks[dir] = component.NewAnimation(spec.Character.FrameDuration, component.PlayLoop, grid[dir]...)
	}

	monsterSheet, err := load(spec.Monster.Sheet)
	if err != nil {
		return nil, err
	}
	monsterGrid, err := component.SplitSheet(monsterSheet, spec.Monster.Cols, 1)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", spec.Monster.Sheet, err)
	}
	s.monster = component.NewAnimation(spec.Monster.FrameDuration, component.PlayLoop, monsterGrid[0]...)

	for _, bs := range spec.Bars {
		tex, err := load(bs.Image)
		if err != nil {
			return nil, err
		}
		meter := component.NewMeter(bs.Max)
		if bs.Current > 0 {
			meter.Set(bs.Current)
		}
		s.bars = append(s.bars, &bar{name: bs.Name, tex: tex, meter: meter})
	}

	s.configure(spec)
	x, y := spec.Start()
	s.state = motion.New(motion.Vec{X: x, Y: y})

	if music != nil {
		music.SetVolume(spec.Music.Volume)
		music.Play()
	}
	return s, nil
}

// configure copies the tuning values of spec into the scene.
func (s *Scene) configure(spec prefabs.SceneSpec) {
	s.spec = spec
	s.cfg = motion.Config{
		Speed:          spec.Character.Speed,
		StopThreshold:  spec.Character.StopThreshold,
		ClampOvershoot: spec.Character.ClampOvershoot,
	}
	s.shadowTint = spec.Shadow.Color.NRGBA()
	for _, walk := range s.walks {
		walk.FrameDuration = spec.Character.FrameDuration
	}
	s.monster.FrameDuration = spec.Monster.FrameDuration
	for i, b := range s.bars {
		if i >= len(spec.Bars) {
			break
		}
		b.spec = spec.Bars[i]
		b.tint = spec.Bars[i].Color.NRGBA()
		b.meter.Max = spec.Bars[i].Max
		b.meter.Set(b.meter.Current)
	}
}

// Apply swaps in new tuning values (speed, threshold, offsets, colours,
// volume, frame durations) without reloading textures. The character keeps
// its position and state.
func (s *Scene) Apply(spec prefabs.SceneSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	changed := assetsChanged(s.spec, spec)
	if changed {
		spec = keepLoadedAssets(s.spec, spec)
	}
	s.configure(spec)
	s.mute.SetVolume(spec.Music.Volume)
	if changed {
		return ErrAssetsChanged
	}
	return nil
}

func assetsChanged(old, next prefabs.SceneSpec) bool {
	if old.Background.Image != next.Background.Image ||
		old.Shadow.Image != next.Shadow.Image ||
		old.Character.Sheet != next.Character.Sheet ||
		old.Character.Cols != next.Character.Cols ||
		old.Character.Rows != next.Character.Rows ||
		old.Monster.Sheet != next.Monster.Sheet ||
		old.Monster.Cols != next.Monster.Cols ||
		old.Music.File != next.Music.File ||
		old.Music.Loop != next.Music.Loop ||
		len(old.Bars) != len(next.Bars) {
		return true
	}
	for i := range old.Bars {
		if old.Bars[i].Image != next.Bars[i].Image {
			return true
		}
	}
	return false
}

// keepLoadedAssets returns next with the image, sheet layout and music fields
// of loaded, so the spec keeps describing what is actually on screen and a
// later reload of the same file reports the change again.
func keepLoadedAssets(loaded, next prefabs.SceneSpec) prefabs.SceneSpec {
	next.Background.Image = loaded.Background.Image
	next.Shadow.Image = loaded.Shadow.Image
	next.Character.Sheet = loaded.Character.Sheet
	next.Character.Cols = loaded.Character.Cols
	next.Character.Rows = loaded.Character.Rows
	next.Monster.Sheet = loaded.Monster.Sheet
	next.Monster.Cols = loaded.Monster.Cols
	next.Music.File = loaded.Music.File
	next.Music.Loop = loaded.Music.Loop
	next.Bars = mergeBars(loaded.Bars, next.Bars)
	return next
}

// mergeBars keeps one spec per loaded bar, taking the new values where the
// new spec has a bar at that index and the image is unchanged.
func mergeBars(old, next []prefabs.BarSpec) []prefabs.BarSpec {
	out := make([]prefabs.BarSpec, len(old))
	for i := range old {
		out[i] = old[i]
		if i < len(next) && next[i].Image == old[i].Image {
			out[i] = next[i]
		}
	}
	return out
}

// Update advances the scene by dt seconds with this frame's pointer input.
func (s *Scene) Update(in motion.Input, dt float64) {
	s.state = motion.Step(s.cfg, s.state, in, dt)
}

// Snapshot returns the current motion state.
func (s *Scene) Snapshot() motion.Snapshot {
	return s.state
}

// Spec returns the spec the scene is running with.
func (s *Scene) Spec() prefabs.SceneSpec {
	return s.spec
}

// CharacterFrame returns which walk row and which frame in it is shown. Idle
// states always show the first frame of their row.
func (s *Scene) CharacterFrame() (motion.Direction, int) {
	facing := s.state.State.Facing()
	if s.state.State.IsIdle() {
		return facing, 0
	}
	return facing, s.walks[facing].KeyFrameIndex(s.state.Clock)
}

// MonsterFrame returns the monster's current idle frame index.
func (s *Scene) MonsterFrame() int {
	return s.monster.KeyFrameIndex(s.state.Clock)
}

// Meter returns the meter behind the named bar, or nil.
func (s *Scene) Meter(name string) *component.Meter {
	for _, b := range s.bars {
		if b.name == name {
			return b.meter
		}
	}
	return nil
}

// ToggleMute mutes or unmutes the music and returns the new mute state.
func (s *Scene) ToggleMute() bool {
	return s.mute.Toggle()
}

// Muted reports whether the music is muted.
func (s *Scene) Muted() bool {
	return s.mute.Muted()
}

// Close stops the music.
func (s *Scene) Close() error {
	if s.music == nil {
		return nil
	}
	s.music.Pause()
	return s.music.Close()
}
