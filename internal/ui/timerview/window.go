package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomodorotimer/internal/core/pomodoro"
)

var (
	workColor = color.NRGBA{R: 252, G: 143, B: 133, A: 255}
	restColor = color.NRGBA{R: 99, G: 196, B: 163, A: 255}
)

const (
	timeTextSize = 55
	buttonHeight = 50
	windowWidth  = 360
	windowHeight = 420
)

// View is what the window shows for one engine snapshot.
type View struct {
	Phase   pomodoro.Phase
	State   pomodoro.State
	Display string
}

// Window is the single timer screen: a progress ring around the
// countdown label and the start/pause/resume button.
type Window struct {
	window    fyne.Window
	timeLabel *canvas.Text
	button    *widget.Button
	buttonBg  *canvas.Rectangle
	ring      *progressRing
	view      View
}

// NewWindow builds the timer window. onPrimary is called on button taps.
func NewWindow(app fyne.App, onPrimary func()) *Window {
	window := app.NewWindow("Pomodoro")

	timeLabel := canvas.NewText("--:--", workColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextSize = timeTextSize

	ring := newProgressRing(workColor)

	button := widget.NewButton("", onPrimary)
	button.Importance = widget.LowImportance
	buttonBg := canvas.NewRectangle(workColor)
	buttonBg.CornerRadius = buttonHeight / 2
	buttonBg.SetMinSize(fyne.NewSize(windowWidth*0.4, buttonHeight))

	content := container.NewStack(
		ring.raster,
		container.NewCenter(container.NewVBox(
			timeLabel,
			container.NewCenter(container.NewStack(buttonBg, button)),
		)),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))

	return &Window{
		window:    window,
		timeLabel: timeLabel,
		button:    button,
		buttonBg:  buttonBg,
		ring:      ring,
	}
}

// Render updates labels and colors for a new snapshot.
func (view *Window) Render(next View) {
	if next.Phase != view.view.Phase {
		accent := phaseColor(next.Phase)
		view.timeLabel.Color = accent
		view.buttonBg.FillColor = accent
		view.buttonBg.Refresh()
		view.ring.SetAccent(accent)
	}
	if next.Display != view.timeLabel.Text {
		view.timeLabel.Text = next.Display
		view.timeLabel.Refresh()
	} else if next.Phase != view.view.Phase {
		view.timeLabel.Refresh()
	}
	if title := ActionTitle(next.State, next.Phase); title != view.button.Text {
		view.button.SetText(title)
	}
	view.view = next
}

// SetProgress fills the ring up to value in [0, 1].
func (view *Window) SetProgress(value float64) {
	view.ring.SetValue(value)
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Window exposes the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// ActionTitle is the label of the primary button for a state.
func ActionTitle(state pomodoro.State, phase pomodoro.Phase) string {
	switch state {
	case pomodoro.StateRunning:
		return "Pause"
	case pomodoro.StatePaused:
		return "Resume"
	}
	return PhaseTitle(phase)
}

// PhaseTitle returns the display name of a phase.
func PhaseTitle(phase pomodoro.Phase) string {
	if phase == pomodoro.PhaseRest {
		return "Rest"
	}
	return "Work"
}

func phaseColor(phase pomodoro.Phase) color.Color {
	if phase == pomodoro.PhaseRest {
		return restColor
	}
	return workColor
}
