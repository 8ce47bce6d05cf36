// Package motion selects the character's movement and animation state for a
// frame. It has no rendering dependencies: every step takes a Snapshot and
// returns a new one.
package motion

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec is a 2D point or displacement in world space (origin bottom-left).
type Vec = cp.Vector

const (
	DefaultSpeed         = 200.0
	DefaultStopThreshold = 3.0
)

// Config holds the movement tuning values.
type Config struct {
	// Speed in world units per second.
	Speed float64
	// StopThreshold is the distance at or below which the character snaps to
	// its target and goes idle.
	StopThreshold float64
	// ClampOvershoot limits a step to the remaining distance. When false a
	// step may carry the character past the target; it is pulled back the next
	// frame once within StopThreshold.
	ClampOvershoot bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Speed:          DefaultSpeed,
		StopThreshold:  DefaultStopThreshold,
		ClampOvershoot: true,
	}
}

// Snapshot is the full motion state between frames.
type Snapshot struct {
	Position Vec
	Target   Vec
	State    State
	// Clock is the accumulated time in seconds, used to sample looping
	// animations. It is never reset.
	Clock float64
}

// New returns an idle, down-facing snapshot standing at start.
func New(start Vec) Snapshot {
	return Snapshot{Position: start, Target: start, State: IdleDown}
}

// Input is the pointer signal for a single frame.
type Input struct {
	Touched bool
	Point   Vec
}

// Classify picks the dominant axis of a displacement. Horizontal wins only when
// strictly larger; ties and the zero vector fall through to the vertical axis,
// where anything not strictly upward counts as down.
func Classify(d Vec) Direction {
	if math.Abs(d.X) > math.Abs(d.Y) {
		if d.X > 0 {
			return Right
		}
		return Left
	}
	if d.Y > 0 {
		return Up
	}
	return Down
}

// Step advances s by dt seconds.
func Step(cfg Config, s Snapshot, in Input, dt float64) Snapshot {
	if dt < 0 {
		dt = 0
	}
	next := s
	next.State = next.State.clamp()
	next.Clock += dt

	if in.Touched {
		next.Target = in.Point
		next.State = Next(next.State, Classify(next.Target.Sub(next.Position)))
	}

	dist := next.Position.Distance(next.Target)
	if dist > cfg.StopThreshold {
		stride := cfg.Speed * dt
		if cfg.ClampOvershoot && stride > dist {
			stride = dist
		}
		heading := next.Target.Sub(next.Position).Mult(1 / dist)
		next.Position = next.Position.Add(heading.Mult(stride))
	} else {
		next.Position = next.Target
		next.State = Next(next.State, Arrived)
	}
	return next
}
