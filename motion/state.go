package motion

import "fmt"

// State is the character's discrete animation mode: idle or moving, facing one
// of four directions. Idle states occupy 0-3 and moving states 4-7, in the same
// facing order, so state%4 is always the idle form.
type State int

const (
	IdleDown State = iota
	IdleRight
	IdleLeft
	IdleUp
	MoveDown
	MoveRight
	MoveLeft
	MoveUp
)

// StateCount is the number of valid states.
const StateCount = 8

var stateNames = [StateCount]string{
	"idle_down", "idle_right", "idle_left", "idle_up",
	"move_down", "move_right", "move_left", "move_up",
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the eight defined states.
func (s State) Valid() bool {
	return s >= 0 && s < StateCount
}

// IsIdle reports whether s is one of the idle states.
func (s State) IsIdle() bool {
	return s.clamp() < MoveDown
}

// Idle returns the idle form of s, keeping its facing.
func (s State) Idle() State {
	return s.clamp() % 4
}

// Facing returns the direction the state is facing. It never returns Arrived.
func (s State) Facing() Direction {
	return Direction(s.clamp() % 4)
}

func (s State) clamp() State {
	if s < 0 {
		return IdleDown
	}
	if s >= StateCount {
		return StateCount - 1
	}
	return s
}

// Direction is the classified input for a frame. The first four values double
// as facings and as sprite sheet row indices.
type Direction int

const (
	Down Direction = iota
	Right
	Left
	Up
	Arrived
)

// DirectionCount is the number of columns in the transition table.
const DirectionCount = 5

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Arrived:
		return "arrived"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Transitions is indexed [current state][direction]. A click in any direction
// starts the matching walk; arriving drops back to the idle form of the
// current state.
var Transitions = [StateCount][DirectionCount]State{
	//         down      right      left      up      arrived
	IdleDown:  {MoveDown, MoveRight, MoveLeft, MoveUp, IdleDown},
	IdleRight: {MoveDown, MoveRight, MoveLeft, MoveUp, IdleRight},
	IdleLeft:  {MoveDown, MoveRight, MoveLeft, MoveUp, IdleLeft},
	IdleUp:    {MoveDown, MoveRight, MoveLeft, MoveUp, IdleUp},
	MoveDown:  {MoveDown, MoveRight, MoveLeft, MoveUp, IdleDown},
	MoveRight: {MoveDown, MoveRight, MoveLeft, MoveUp, IdleRight},
	MoveLeft:  {MoveDown, MoveRight, MoveLeft, MoveUp, IdleLeft},
	MoveUp:    {MoveDown, MoveRight, MoveLeft, MoveUp, IdleUp},
}

// Next looks up the transition for (current, dir). Out of range arguments are
// clamped so the result is always a valid state.
func Next(current State, dir Direction) State {
	current = current.clamp()
	if dir < 0 {
		dir = Down
	}
	if dir >= DirectionCount {
		dir = Arrived
	}
	return Transitions[current][dir]
}
