package game

import (
	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render"
)

// State identifies the active scene.
type State int

const (
	StateExit        State = -1
	StateIdle        State = 0
	StateExploration State = 1
	StateJumpscare   State = 2
)

func (s State) String() string {
	switch s {
	case StateExit:
		return "exit"
	case StateIdle:
		return "idle"
	case StateExploration:
		return "exploration"
	case StateJumpscare:
		return "jumpscare"
	default:
		return "unknown"
	}
}

// Camera is the top-left corner of the viewport in world pixels.
type Camera struct {
	X, Y int
}

// Point returns the camera as a geom.Point.
func (c Camera) Point() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

// Frame carries what a scene needs to run one tick.
type Frame struct {
	Input render.InputManager
}

// Scene is one screen of the game. Step runs one tick and returns the
// state to be in next; returning a different state ends the scene.
type Scene interface {
	Enter()
	Step(f Frame) State
	Draw(screen render.Image)
}
