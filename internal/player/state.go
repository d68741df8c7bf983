package player

import "sync/atomic"

// State of a Player. Transitions only move forward:
//
//	Starting -> Running -> Draining -> Stopped
type State int32

const (
	Starting State = iota
	Running
	Draining
	Stopped
)

func (s State) String() string {
	switch s {
	case Starting:
		return "Starting"
	case Running:
		return "Running"
	case Draining:
		return "Draining"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

type atomicState struct {
	v atomic.Int32
}

func (a *atomicState) load() State {
	return State(a.v.Load())
}

// advance moves to next if that is a forward transition.
func (a *atomicState) advance(next State) bool {
	for {
		cur := a.v.Load()
		if State(cur) >= next {
			return false
		}
		if a.v.CompareAndSwap(cur, int32(next)) {
			return true
		}
	}
}

func (a *atomicState) transition(from, to State) bool {
	return a.v.CompareAndSwap(int32(from), int32(to))
}
