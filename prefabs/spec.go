package prefabs

import (
	"errors"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the named prefab over base. Fields the file leaves out
// keep their base values.
func LoadSpec[T any](dir, filename string, base T) (T, error) {
	var zero T
	data, err := Load(dir, filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type BackgroundSpec struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CharacterSpec struct {
	Sheet          string   `yaml:"sheet"`
	Cols           int      `yaml:"cols"`
	Rows           int      `yaml:"rows"`
	FrameDuration  float64  `yaml:"frame_duration"`
	Speed          float64  `yaml:"speed"`
	StopThreshold  float64  `yaml:"stop_threshold"`
	ClampOvershoot bool     `yaml:"clamp_overshoot"`
	StartX         *float64 `yaml:"start_x"`
	StartY         *float64 `yaml:"start_y"`
	// AnchorYOffset lowers the sprite so its feet sit below the position.
	AnchorYOffset float64 `yaml:"anchor_y_offset"`
}

type MonsterSpec struct {
	Sheet         string  `yaml:"sheet"`
	Cols          int     `yaml:"cols"`
	FrameDuration float64 `yaml:"frame_duration"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	// FromRight measures X from the right edge of the screen.
	FromRight bool `yaml:"from_right"`
}

type ShadowSpec struct {
	Image            string    `yaml:"image"`
	Color            YAMLColor `yaml:"color"`
	CharacterOffsetX float64   `yaml:"character_offset_x"`
	CharacterOffsetY float64   `yaml:"character_offset_y"`
	MonsterOffsetX   float64   `yaml:"monster_offset_x"`
	MonsterOffsetY   float64   `yaml:"monster_offset_y"`
}

type BarSpec struct {
	Name    string    `yaml:"name"`
	Image   string    `yaml:"image"`
	Color   YAMLColor `yaml:"color"`
	OffsetX float64   `yaml:"offset_x"`
	OffsetY float64   `yaml:"offset_y"`
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Max     float64   `yaml:"max"`
	Current float64   `yaml:"current"`
}

type MusicSpec struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// SceneSpec describes everything the demo scene loads and how it behaves.
type SceneSpec struct {
	Name       string         `yaml:"name"`
	Screen     ScreenSpec     `yaml:"screen"`
	Background BackgroundSpec `yaml:"background"`
	Character  CharacterSpec  `yaml:"character"`
	Monster    MonsterSpec    `yaml:"monster"`
	Shadow     ShadowSpec     `yaml:"shadow"`
	Bars       []BarSpec      `yaml:"bars"`
	Music      MusicSpec      `yaml:"music"`
}

// DefaultSceneSpec returns the stock scene. Files loaded with LoadScene only
// need to name the fields they change.
func DefaultSceneSpec() SceneSpec {
	return SceneSpec{
		Name:   "clickwalk",
		Screen: ScreenSpec{Width: 1337, Height: 730},
		Background: BackgroundSpec{
			Image:  "background.png",
			Width:  1337,
			Height: 730,
		},
		Character: CharacterSpec{
			Sheet:          "character.png",
			Cols:           9,
			Rows:           4,
			FrameDuration:  0.1,
			Speed:          200,
			StopThreshold:  3,
			ClampOvershoot: true,
			AnchorYOffset:  10,
		},
		Monster: MonsterSpec{
			Sheet:         "metaling.png",
			Cols:          4,
			FrameDuration: 0.1,
			X:             400,
			Y:             350,
			FromRight:     true,
		},
		Shadow: ShadowSpec{
			Image:            "shadow.png",
			Color:            YAMLColor{color.NRGBA{A: 128}},
			CharacterOffsetX: 15,
			CharacterOffsetY: 10,
			MonsterOffsetX:   5,
			MonsterOffsetY:   10,
		},
		Bars: []BarSpec{
			{Name: "hp", Image: "pixel.png", Color: YAMLColor{color.NRGBA{G: 0xbf, A: 0xff}}, OffsetX: 5, OffsetY: 0, Width: 70, Height: 4, Max: 100, Current: 100},
			{Name: "sp", Image: "pixel.png", Color: YAMLColor{color.NRGBA{B: 0xff, A: 0xff}}, OffsetX: 5, OffsetY: -4, Width: 70, Height: 4, Max: 100, Current: 100},
		},
		Music: MusicSpec{File: "bgMusic.mp3", Volume: 0.1, Loop: true},
	}
}

// LoadScene reads the named scene file over the defaults and validates it.
func LoadScene(dir, name string) (SceneSpec, error) {
	if name == "" {
		name = DefaultScene
	}
	spec, err := LoadSpec(dir, name, DefaultSceneSpec())
	if err != nil {
		return SceneSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// Start returns the character's spawn point. Unset coordinates default to
// the centre of the screen.
func (s SceneSpec) Start() (x, y float64) {
	x, y = float64(s.Screen.Width)/2, float64(s.Screen.Height)/2
	if s.Character.StartX != nil {
		x = *s.Character.StartX
	}
	if s.Character.StartY != nil {
		y = *s.Character.StartY
	}
	return x, y
}

// MonsterPosition returns the monster's world position.
func (s SceneSpec) MonsterPosition() (x, y float64) {
	x = s.Monster.X
	if s.Monster.FromRight {
		x = float64(s.Screen.Width) - s.Monster.X
	}
	return x, s.Monster.Y
}

// Images lists every image the scene needs, without duplicates.
func (s SceneSpec) Images() []string {
	seen := map[string]bool{}
	var out []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	add(s.Background.Image)
	add(s.Character.Sheet)
	add(s.Monster.Sheet)
	add(s.Shadow.Image)
	for _, bar := range s.Bars {
		add(bar.Image)
	}
	return out
}

// Validate reports every problem with the spec at once.
func (s SceneSpec) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.Screen.Width > 0 && s.Screen.Height > 0, "screen: size must be positive, got %dx%d", s.Screen.Width, s.Screen.Height)
	check(s.Background.Image != "", "background: image is required")

	c := s.Character
	check(c.Sheet != "", "character: sheet is required")
	check(c.Cols > 0 && c.Rows > 0, "character: grid must be positive, got %dx%d", c.Cols, c.Rows)
	check(c.Rows >= 4, "character: sheet needs 4 rows (down, right, left, up), got %d", c.Rows)
	check(c.FrameDuration > 0, "character: frame_duration must be positive, got %v", c.FrameDuration)
	check(c.Speed > 0, "character: speed must be positive, got %v", c.Speed)
	check(c.StopThreshold >= 0, "character: stop_threshold must not be negative, got %v", c.StopThreshold)

	m := s.Monster
	check(m.Sheet != "", "monster: sheet is required")
	check(m.Cols > 0, "monster: cols must be positive, got %d", m.Cols)
	check(m.FrameDuration > 0, "monster: frame_duration must be positive, got %v", m.FrameDuration)

	check(s.Shadow.Image != "", "shadow: image is required")

	for i, bar := range s.Bars {
		check(bar.Image != "", "bars[%d]: image is required", i)
		check(bar.Width > 0 && bar.Height > 0, "bars[%d]: size must be positive, got %vx%v", i, bar.Width, bar.Height)
		check(bar.Max > 0, "bars[%d]: max must be positive, got %v", i, bar.Max)
	}

	check(s.Music.File != "", "music: file is required")
	check(s.Music.Volume >= 0 && s.Music.Volume <= 1, "music: volume must be in [0, 1], got %v", s.Music.Volume)

	return errors.Join(errs...)
}
