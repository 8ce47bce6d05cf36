package placeholders

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const (
	// MusicFile is the name the placeholder track is written under.
	MusicFile = "bgMusic.wav"
	// MusicDuration is the length of one loop of the placeholder track.
	MusicDuration = 8 * time.Second
	// MusicSampleRate matches the game's audio context.
	MusicSampleRate = beep.SampleRate(44100)
)

// A minor arpeggio, one note per quarter second.
var melody = []float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 196.00, 246.94}

// MelodyGenerator loops a short plucked arpeggio.
type MelodyGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

// NewMelodyGenerator creates an endless melody streamer.
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	return &MelodyGenerator{
		sr:      sr,
		notes:   melody,
		noteLen: sr.N(250 * time.Millisecond),
	}
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.notes[(g.pos/g.noteLen)%len(g.notes)]
		inNote := g.pos % g.noteLen
		t := float64(g.pos) / float64(g.sr)

		// fast attack, exponential decay
		attack := math.Min(float64(inNote)/float64(g.sr.N(5*time.Millisecond)), 1)
		decay := math.Exp(-6 * float64(inNote) / float64(g.noteLen))
		sample := 0.25 * attack * decay * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(4*math.Pi*note*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// WriteMusic encodes d of the placeholder melody as 16-bit stereo wav.
func WriteMusic(path string, d time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: MusicSampleRate, NumChannels: 2, Precision: 2}
	streamer := beep.Take(MusicSampleRate.N(d), NewMelodyGenerator(MusicSampleRate))
	if err := wav.Encode(f, streamer, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
