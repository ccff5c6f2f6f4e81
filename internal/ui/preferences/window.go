package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	work     *widget.Entry
	rest     *widget.Entry
	// Entry text as last rendered. Fields whose text is unchanged keep
	// their exact duration on save, including sub-minute values.
	shownWork string
	shownRest string
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	work := widget.NewEntry()
	rest := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), work, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Rest"), rest, widget.NewLabel("min")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 200))

	prefs := &Window{
		window: window,
		onSave: onSave,
		work:   work,
		rest:   rest,
	}
	prefs.UpdateSettings(settings)
	saveButton.OnTapped = prefs.handleSave

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.shownWork = fmt.Sprintf("%d", int(settings.WorkDuration.Minutes()))
	prefs.shownRest = fmt.Sprintf("%d", int(settings.RestDuration.Minutes()))
	prefs.work.SetText(prefs.shownWork)
	prefs.rest.SetText(prefs.shownRest)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if prefs.work.Text != prefs.shownWork {
		if minutes, ok := parsePositiveInt(prefs.work.Text); ok {
			settings.WorkDuration = time.Duration(minutes) * time.Minute
		}
	}
	if prefs.rest.Text != prefs.shownRest {
		if minutes, ok := parsePositiveInt(prefs.rest.Text); ok {
			settings.RestDuration = time.Duration(minutes) * time.Minute
		}
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
