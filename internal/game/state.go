package game

import "errors"

var ErrIllegalTransition = errors.New("illegal scene transition")

type State int

const (
	StateReady State = iota
	StatePlay
	StatePause
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlay:
		return "Play"
	case StatePause:
		return "Pause"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

var transitions = map[State][]State{
	StateReady: {StatePlay},
	StatePlay:  {StatePause, StateDone},
	StatePause: {StatePlay, StateReady},
	StateDone:  {StateReady},
}

// CanTransition reports whether the scene may move from one state to another.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
