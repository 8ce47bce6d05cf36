package motion

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		d    Vec
		want Direction
	}{
		{"right", Vec{X: 10}, Right},
		{"left", Vec{X: -10}, Left},
		{"up", Vec{Y: 10}, Up},
		{"down", Vec{Y: -10}, Down},
		{"diagonal_tie_up", Vec{X: 5, Y: 5}, Up},
		{"diagonal_tie_down", Vec{X: 5, Y: -5}, Down},
		{"zero_is_down", Vec{}, Down},
		{"mostly_right", Vec{X: 7, Y: -6.9}, Right},
		{"mostly_up", Vec{X: -3, Y: 3.1}, Up},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.d); got != c.want {
				t.Fatalf("Classify(%v) = %v, want %v", c.d, got, c.want)
			}
		})
	}
}

func TestStepClickSelectsWalk(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name   string
		target Vec
		want   State
	}{
		{"right", Vec{X: 10}, MoveRight},
		{"up", Vec{Y: 10}, MoveUp},
		{"left", Vec{X: -10}, MoveLeft},
		{"down", Vec{Y: -10}, MoveDown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Step(cfg, New(Vec{}), Input{Touched: true, Point: c.target}, 1.0/60)
			if s.State != c.want {
				t.Fatalf("state = %v, want %v", s.State, c.want)
			}
			if s.Target != c.target {
				t.Fatalf("target = %v, want %v", s.Target, c.target)
			}
		})
	}
}

func TestStepMovesBySpeedTimesDt(t *testing.T) {
	cfg := DefaultConfig()
	s := New(Vec{})
	s = Step(cfg, s, Input{Touched: true, Point: Vec{X: 30, Y: 40}}, 0.1)

	// 200 * 0.1 = 20 units along (0.6, 0.8)
	if !near(s.Position.X, 12) || !near(s.Position.Y, 16) {
		t.Fatalf("position = %v, want (12, 16)", s.Position)
	}
	if s.State != MoveUp {
		t.Fatalf("state = %v, want %v", s.State, MoveUp)
	}
}

func TestStepSnapsWithinThreshold(t *testing.T) {
	cfg := DefaultConfig()
	s := Snapshot{
		Position: Vec{X: 100, Y: 100},
		Target:   Vec{X: 102, Y: 102},
		State:    MoveRight,
	}
	s = Step(cfg, s, Input{}, 1.0/60)
	if s.Position != s.Target {
		t.Fatalf("position = %v, want exactly %v", s.Position, s.Target)
	}
	if s.State != IdleRight {
		t.Fatalf("state = %v, want %v", s.State, IdleRight)
	}
}

func TestStepThresholdBoundary(t *testing.T) {
	cfg := DefaultConfig()
	s := Snapshot{Position: Vec{}, Target: Vec{X: 3}, State: MoveRight}
	s = Step(cfg, s, Input{}, 1.0/60)
	if s.Position != (Vec{X: 3}) || s.State != IdleRight {
		t.Fatalf("distance == threshold should snap, got %v %v", s.Position, s.State)
	}
}

func TestStepOvershoot(t *testing.T) {
	start := Snapshot{Position: Vec{}, Target: Vec{X: 10}, State: MoveRight}

	t.Run("clamped", func(t *testing.T) {
		cfg := DefaultConfig()
		s := Step(cfg, start, Input{}, 1)
		if !near(s.Position.X, 10) || !near(s.Position.Y, 0) {
			t.Fatalf("position = %v, want (10, 0)", s.Position)
		}
		if s.State != MoveRight {
			t.Fatalf("state = %v, should still be walking this frame", s.State)
		}
		s = Step(cfg, s, Input{}, 1)
		if s.State != IdleRight || s.Position != s.Target {
			t.Fatalf("expected arrival on next frame, got %v at %v", s.State, s.Position)
		}
	})

	t.Run("unclamped", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ClampOvershoot = false
		s := Step(cfg, start, Input{}, 1)
		if !near(s.Position.X, 200) {
			t.Fatalf("position = %v, want overshoot to x=200", s.Position)
		}
	})
}

func TestStepNeverExceedsRemainingDistance(t *testing.T) {
	cfg := DefaultConfig()
	s := New(Vec{X: 50, Y: 50})
	s = Step(cfg, s, Input{Touched: true, Point: Vec{X: 400, Y: -120}}, 0)
	for i := 0; i < 500; i++ {
		before := s.Position.Distance(s.Target)
		s = Step(cfg, s, Input{}, 1.0/30)
		after := s.Position.Distance(s.Target)
		if after > before+eps {
			t.Fatalf("frame %d: distance grew from %v to %v", i, before, after)
		}
	}
	if s.Position != s.Target || !s.State.IsIdle() {
		t.Fatalf("expected to arrive idle, got %v at %v", s.State, s.Position)
	}
	if s.State != IdleRight {
		t.Fatalf("state = %v, want %v", s.State, IdleRight)
	}
}

func TestStepTargetEqualsPosition(t *testing.T) {
	cfg := DefaultConfig()
	s := New(Vec{X: 5, Y: 5})
	s = Step(cfg, s, Input{Touched: true, Point: Vec{X: 5, Y: 5}}, 1.0/60)
	if s.State != IdleDown {
		t.Fatalf("state = %v, want %v", s.State, IdleDown)
	}
	if s.Position != (Vec{X: 5, Y: 5}) {
		t.Fatalf("position moved to %v", s.Position)
	}
}

func TestStepAccumulatesClock(t *testing.T) {
	cfg := DefaultConfig()
	s := New(Vec{})
	for i := 0; i < 10; i++ {
		s = Step(cfg, s, Input{}, 0.25)
	}
	if !near(s.Clock, 2.5) {
		t.Fatalf("clock = %v, want 2.5", s.Clock)
	}
	s = Step(cfg, s, Input{}, -1)
	if !near(s.Clock, 2.5) {
		t.Fatalf("negative dt changed clock to %v", s.Clock)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	s := New(Vec{})
	_ = Step(cfg, s, Input{Touched: true, Point: Vec{X: 100}}, 0.5)
	if s != New(Vec{}) {
		t.Fatalf("Step mutated its argument: %+v", s)
	}
}
