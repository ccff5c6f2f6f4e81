package pomodoro

import (
	"time"

	"pomodorotimer/internal/core/model"
)

// Options contains runtime dependencies for Engine.
type Options struct {
	Clock Clock
}

// Engine is the work/rest countdown state machine.
//
// Engine does no locking. Start, Pause, Resume, Stop, Tick and Configure
// must be called from one goroutine or otherwise serialized.
type Engine struct {
	config    model.PomodoroConfig
	clock     Clock
	phase     Phase
	state     State
	remaining time.Duration
	targetEnd time.Time
	display   string
	events    []chan Event
}

// New creates an idle Engine in the work phase.
func New(config model.PomodoroConfig, options Options) *Engine {
	if options.Clock == nil {
		options.Clock = SystemClock
	}

	engine := &Engine{
		config: withDefaults(config),
		clock:  options.Clock,
		phase:  PhaseWork,
		state:  StateIdle,
	}
	engine.remaining = engine.DurationFor(PhaseWork)
	engine.display = FormatCountdown(engine.remaining)
	return engine
}

// Subscribe registers a new observer channel. Sends never block; a full
// channel drops the event.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.events = append(engine.events, ch)
	return ch
}

// DurationFor returns the configured length of a phase.
func (engine *Engine) DurationFor(phase Phase) time.Duration {
	if phase == PhaseRest {
		return engine.config.RestDuration
	}
	return engine.config.WorkDuration
}

// Start begins the countdown of the current phase from its full length.
func (engine *Engine) Start() error {
	if engine.state != StateIdle {
		return invalidState("start", engine.state)
	}

	now := engine.clock.Now()
	engine.remaining = engine.DurationFor(engine.phase)
	engine.targetEnd = now.Add(engine.remaining)
	engine.state = StateRunning
	engine.display = FormatCountdown(engine.remaining)
	engine.emitState(now)
	return nil
}

// Pause freezes the remaining time. Wall-clock time spent paused is not
// counted against the countdown.
func (engine *Engine) Pause() error {
	if engine.state != StateRunning {
		return invalidState("pause", engine.state)
	}

	now := engine.clock.Now()
	engine.remaining = remainingUntil(engine.targetEnd, now)
	engine.targetEnd = time.Time{}
	engine.state = StatePaused
	engine.display = FormatCountdown(engine.remaining)
	engine.emitState(now)
	return nil
}

// Resume re-anchors the countdown on the frozen remaining time.
func (engine *Engine) Resume() error {
	if engine.state != StatePaused {
		return invalidState("resume", engine.state)
	}

	now := engine.clock.Now()
	engine.targetEnd = now.Add(engine.remaining)
	engine.state = StateRunning
	engine.emitState(now)
	return nil
}

// Stop abandons the current countdown. The phase is kept and the
// remaining time goes back to the phase's full length.
func (engine *Engine) Stop() error {
	if engine.state != StateRunning && engine.state != StatePaused {
		return invalidState("stop", engine.state)
	}

	engine.targetEnd = time.Time{}
	engine.state = StateIdle
	engine.remaining = engine.DurationFor(engine.phase)
	engine.display = FormatStatic(engine.remaining)
	engine.emitState(engine.clock.Now())
	return nil
}

// Tick recomputes the remaining time from the target end time. Outside
// of StateRunning it changes nothing and reports the current snapshot.
// When the countdown reaches zero the engine switches phase and goes
// idle; the returned Update carries the phase change.
func (engine *Engine) Tick() Update {
	if engine.state != StateRunning {
		return engine.snapshot()
	}

	now := engine.clock.Now()
	engine.remaining = remainingUntil(engine.targetEnd, now)
	if engine.remaining > 0 {
		engine.display = FormatCountdown(engine.remaining)
		engine.emit(Event{
			Type:      EventProgress,
			State:     engine.state,
			Phase:     engine.phase,
			Remaining: engine.remaining,
			Display:   engine.display,
			At:        now,
		})
		return engine.snapshot()
	}

	previous := engine.expire(now)
	update := engine.snapshot()
	update.PhaseChanged = true
	update.Previous = previous
	return update
}

// Configure replaces the phase durations. An idle engine picks up the new
// length at once; a running or paused countdown keeps its anchor and the
// change applies from the next Start.
func (engine *Engine) Configure(config model.PomodoroConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	engine.config = config
	if engine.state == StateIdle {
		engine.remaining = engine.DurationFor(engine.phase)
		engine.display = FormatStatic(engine.remaining)
	}
	return nil
}

// Config returns the active durations.
func (engine *Engine) Config() model.PomodoroConfig {
	return engine.config
}

// Phase returns the current phase.
func (engine *Engine) Phase() Phase {
	return engine.phase
}

// State returns the current lifecycle state.
func (engine *Engine) State() State {
	return engine.state
}

// Remaining returns the remaining time as of the last transition or tick.
func (engine *Engine) Remaining() time.Duration {
	return engine.remaining
}

// Display returns the label text for the current countdown.
func (engine *Engine) Display() string {
	return engine.display
}

// TargetEndTime returns the wall-clock instant the countdown ends. It is
// only set while running. Presentation does not need it; it exists for
// inspection and logging.
func (engine *Engine) TargetEndTime() (time.Time, bool) {
	if engine.state != StateRunning {
		return time.Time{}, false
	}
	return engine.targetEnd, true
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
// The progress animation is realigned to it on pause and resume.
func (engine *Engine) Progress() float64 {
	total := engine.DurationFor(engine.phase)
	if total <= 0 {
		return 1
	}
	progress := float64(total-engine.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) expire(now time.Time) Phase {
	previous := engine.phase
	engine.remaining = 0
	engine.targetEnd = time.Time{}
	engine.state = StateExpired
	engine.emitState(now)

	engine.phase = previous.Next()
	engine.remaining = engine.DurationFor(engine.phase)
	engine.state = StateIdle
	engine.display = FormatStatic(engine.remaining)

	engine.emit(Event{
		Type:      EventPhaseChange,
		State:     engine.state,
		Phase:     engine.phase,
		Previous:  previous,
		Remaining: engine.remaining,
		Display:   engine.display,
		At:        now,
	})
	engine.emitState(now)
	return previous
}

func (engine *Engine) snapshot() Update {
	return Update{
		State:     engine.state,
		Phase:     engine.phase,
		Remaining: engine.remaining,
		Display:   engine.display,
	}
}

func (engine *Engine) emitState(at time.Time) {
	engine.emit(Event{
		Type:      EventStateChange,
		State:     engine.state,
		Phase:     engine.phase,
		Remaining: engine.remaining,
		Display:   engine.display,
		At:        at,
	})
}

func (engine *Engine) emit(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func remainingUntil(target, now time.Time) time.Duration {
	remaining := target.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func withDefaults(config model.PomodoroConfig) model.PomodoroConfig {
	if config.WorkDuration <= 0 {
		config.WorkDuration = model.DefaultWorkDuration
	}
	if config.RestDuration <= 0 {
		config.RestDuration = model.DefaultRestDuration
	}
	return config
}
