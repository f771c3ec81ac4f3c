package anim

import (
	"fmt"
)

// Phase is the lifecycle stage of a single animated entity.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEnter
	PhaseHold
	PhaseExit
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEnter:
		return "enter"
	case PhaseHold:
		return "hold"
	case PhaseExit:
		return "exit"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Durations holds the length of each animated phase in seconds.
type Durations struct {
	Enter float64
	Hold  float64
	Exit  float64
}

// NewDurations validates a phase duration set. A negative duration is a
// caller bug and the one condition this package fails fast on; defaulting
// it would silently play a wrong animation.
func NewDurations(enter, hold, exit float64) (Durations, error) {
	if enter < 0 || hold < 0 || exit < 0 {
		return Durations{}, fmt.Errorf("anim: negative phase duration (enter=%v hold=%v exit=%v)", enter, hold, exit)
	}
	return Durations{Enter: enter, Hold: hold, Exit: exit}, nil
}

// Total is the combined length of all three phases.
func (d Durations) Total() float64 {
	return d.Enter + d.Hold + d.Exit
}

// State is the phase-machine value for one animated entity. It carries no
// hidden mutation; AdvanceState derives each next value purely from time.
type State struct {
	Phase       Phase
	Progress    float64
	StartTime   float64
	CurrentTime float64
}

// NewState creates a State in PhaseIdle anchored at startTime.
func NewState(startTime float64) State {
	return State{Phase: PhaseIdle, StartTime: startTime, CurrentTime: startTime}
}

// AdvanceState computes the state at the given time. PhaseComplete is
// terminal; it persists until the caller resets StartTime. A zero-length
// phase reports progress 1 if it is ever observed, so it reads as entered
// and immediately finished within the same tick.
func AdvanceState(s State, now float64, d Durations) State {
	s.CurrentTime = now
	elapsed := now - s.StartTime

	switch {
	case elapsed < 0:
		s.Phase = PhaseIdle
		s.Progress = 0
	case elapsed < d.Enter:
		s.Phase = PhaseEnter
		s.Progress = phaseProgress(elapsed, d.Enter)
	case elapsed < d.Enter+d.Hold:
		s.Phase = PhaseHold
		s.Progress = phaseProgress(elapsed-d.Enter, d.Hold)
	case elapsed < d.Total():
		s.Phase = PhaseExit
		s.Progress = phaseProgress(elapsed-d.Enter-d.Hold, d.Exit)
	default:
		s.Phase = PhaseComplete
		s.Progress = 1
	}

	return s
}

func phaseProgress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return elapsed / duration
}
