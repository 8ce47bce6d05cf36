// Package sound plays the background music track.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/clickwalk/assets"
	"github.com/milk9111/clickwalk/common"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context, creating it on first use.
// Ebiten allows only one.
func Context() *audio.Context {
	contextOnce.Do(func() {
		if ctx := audio.CurrentContext(); ctx != nil {
			audioContext = ctx
			return
		}
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Player is the playback surface the scene needs.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(v float64)
	Volume() float64
	Close() error
}

// Options configures LoadMusic.
type Options struct {
	Volume float64
	Loop   bool
}

// Music is a Player backed by an Ebiten audio player.
type Music struct {
	player *audio.Player
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

// ErrUnsupportedFormat is returned by LoadMusic for file extensions it cannot
// decode.
var ErrUnsupportedFormat = errors.New("sound: unsupported music format")

type decodeFunc func(sampleRate int, r io.Reader) (lengthStream, error)

var decoders = map[string]decodeFunc{
	".mp3": func(sampleRate int, r io.Reader) (lengthStream, error) {
		return mp3.DecodeWithSampleRate(sampleRate, r)
	},
	".ogg": func(sampleRate int, r io.Reader) (lengthStream, error) {
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	},
	".wav": func(sampleRate int, r io.Reader) (lengthStream, error) {
		return wav.DecodeWithSampleRate(sampleRate, r)
	},
}

// LoadMusic decodes the named track from src. The format is chosen by file
// extension: .mp3, .ogg and .wav are supported.
func LoadMusic(src *assets.Source, name string, opts Options) (*Music, error) {
	ext := strings.ToLower(filepath.Ext(name))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("music %q: %w", name, ErrUnsupportedFormat)
	}

	b, err := src.LoadFile(name)
	if err != nil {
		return nil, err
	}

	ctx := Context()
	stream, err := decode(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s %q: %w", strings.TrimPrefix(ext, "."), name, err)
	}

	var r io.Reader = stream
	if opts.Loop {
		r = audio.NewInfiniteLoop(stream, stream.Length())
	}
	p, err := ctx.NewPlayer(r)
	if err != nil {
		return nil, fmt.Errorf("music %q: %w", name, err)
	}
	p.SetVolume(ClampVolume(opts.Volume))
	return &Music{player: p}, nil
}

func (m *Music) Play() {
	if m == nil || m.player == nil {
		return
	}
	m.player.Play()
}

func (m *Music) Pause() {
	if m == nil || m.player == nil {
		return
	}
	m.player.Pause()
}

func (m *Music) IsPlaying() bool {
	return m != nil && m.player != nil && m.player.IsPlaying()
}

func (m *Music) SetVolume(v float64) {
	if m == nil || m.player == nil {
		return
	}
	m.player.SetVolume(ClampVolume(v))
}

func (m *Music) Volume() float64 {
	if m == nil || m.player == nil {
		return 0
	}
	return m.player.Volume()
}

// Close stops playback and releases the player.
func (m *Music) Close() error {
	if m == nil || m.player == nil {
		return nil
	}
	err := m.player.Close()
	m.player = nil
	return err
}

// ClampVolume limits v to [0, 1].
func ClampVolume(v float64) float64 {
	return common.Clamp(v, 0, 1)
}
