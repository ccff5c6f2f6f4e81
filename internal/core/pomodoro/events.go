package pomodoro

import "time"

// Phase selects which countdown duration applies.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// Next returns the phase that follows an expiry of this one.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseRest
	}
	return PhaseWork
}

// State represents the lifecycle of the current countdown.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateExpired State = "expired"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventPhaseChange EventType = "phase_change"
	EventProgress    EventType = "progress"
)

// Event represents an Engine update for observers.
type Event struct {
	Type      EventType
	State     State
	Phase     Phase
	Previous  Phase
	Remaining time.Duration
	Display   string
	At        time.Time
}

// Update is the result of a single tick.
type Update struct {
	State     State
	Phase     Phase
	Remaining time.Duration
	Display   string

	// PhaseChanged is set when the tick expired the countdown. Previous
	// holds the phase that just finished.
	PhaseChanged bool
	Previous     Phase
}
