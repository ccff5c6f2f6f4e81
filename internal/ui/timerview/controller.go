package timerview

import (
	"context"

	"pomodorotimer/internal/core/pomodoro"
	"pomodorotimer/internal/scheduler"
	"pomodorotimer/internal/ui/preferences"
	"pomodorotimer/internal/ui/progress"
)

// Presenter receives engine snapshots.
type Presenter interface {
	Render(View)
}

// Controller maps user taps and poller ticks onto the engine and keeps
// the presentation in step with it. The progress animation follows
// engine transitions and never feeds back into them; on pause and resume
// it is realigned to the engine's own progress.
//
// Toggle, Stop, Apply and ticks must run on one goroutine; the poller's
// Dispatch option is how ticks get there.
type Controller struct {
	ctx       context.Context
	engine    *pomodoro.Engine
	poller    *scheduler.Poller
	animator  *progress.Animator
	presenter Presenter
	onRender  func(View)
}

// NewController wires the engine to its scheduler, animator and view.
// onRender, when set, receives every snapshot after the presenter.
func NewController(ctx context.Context, engine *pomodoro.Engine, poller *scheduler.Poller, animator *progress.Animator, presenter Presenter, onRender func(View)) *Controller {
	return &Controller{
		ctx:       ctx,
		engine:    engine,
		poller:    poller,
		animator:  animator,
		presenter: presenter,
		onRender:  onRender,
	}
}

// Toggle performs the primary action for the current state: start when
// idle, pause when running, resume when paused.
func (controller *Controller) Toggle() error {
	var err error
	switch controller.engine.State() {
	case pomodoro.StateIdle:
		err = controller.start()
	case pomodoro.StateRunning:
		err = controller.pause()
	case pomodoro.StatePaused:
		err = controller.resume()
	default:
		err = &pomodoro.InvalidStateError{Op: "toggle", State: controller.engine.State()}
	}
	controller.render()
	return err
}

// Stop abandons the running or paused countdown.
func (controller *Controller) Stop() error {
	if err := controller.engine.Stop(); err != nil {
		return err
	}
	controller.poller.Stop()
	controller.animator.Stop()
	controller.render()
	return nil
}

// Apply hands new durations to the engine.
func (controller *Controller) Apply(settings preferences.Settings) error {
	if err := controller.engine.Configure(settings.PomodoroConfig()); err != nil {
		return err
	}
	controller.render()
	return nil
}

// Refresh pushes the current engine snapshot to the presenter.
func (controller *Controller) Refresh() {
	controller.render()
}

func (controller *Controller) start() error {
	if err := controller.engine.Start(); err != nil {
		return err
	}
	controller.animator.Start(controller.ctx, controller.engine.DurationFor(controller.engine.Phase()))
	controller.poller.Start(controller.ctx, controller.tick)
	return nil
}

func (controller *Controller) pause() error {
	if err := controller.engine.Pause(); err != nil {
		return err
	}
	controller.poller.Stop()
	controller.animator.Pause()
	controller.animator.Sync(controller.engine.Progress())
	return nil
}

func (controller *Controller) resume() error {
	if err := controller.engine.Resume(); err != nil {
		return err
	}
	controller.animator.Sync(controller.engine.Progress())
	controller.animator.Resume(controller.ctx)
	controller.poller.Start(controller.ctx, controller.tick)
	return nil
}

// tick is the poller callback. It reports whether polling should go on.
func (controller *Controller) tick() bool {
	update := controller.engine.Tick()
	if update.PhaseChanged {
		controller.animator.Stop()
	}
	controller.render()
	return update.State == pomodoro.StateRunning
}

func (controller *Controller) render() {
	view := View{
		Phase:   controller.engine.Phase(),
		State:   controller.engine.State(),
		Display: controller.engine.Display(),
	}
	controller.presenter.Render(view)
	if controller.onRender != nil {
		controller.onRender(view)
	}
}
