package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodorotimer/internal/core/pomodoro"
)

const menuTitle = "Pomodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPrimary     func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	primaryItem *fyne.MenuItem
	stopItem    *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
	builds      int
}

// New creates a tray manager with the provided callbacks. app may be nil
// when the platform has no tray; the manager then only tracks labels.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.primaryItem = fyne.NewMenuItem("Work", func() {
		if manager.callbacks.OnPrimary != nil {
			manager.callbacks.OnPrimary()
		}
	})

	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})
	manager.stopItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// StatusLine describes a timer state for the tray. It carries no
// countdown so the menu is only rebuilt when phase or state changes.
func StatusLine(phase pomodoro.Phase, state pomodoro.State) string {
	return fmt.Sprintf("%s (%s)", phase, state)
}

// SetStatus updates the status label. An unchanged status does not
// rebuild the menu.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetAction updates the primary action label and whether stop is offered.
func (manager *Manager) SetAction(label string, canStop bool) {
	if manager.primaryItem.Label == label && manager.stopItem.Disabled == !canStop {
		return
	}
	manager.primaryItem.Label = label
	manager.stopItem.Disabled = !canStop
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// Action returns the current primary action label.
func (manager *Manager) Action() string {
	return manager.primaryItem.Label
}

func (manager *Manager) refreshMenu() {
	manager.builds++
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.primaryItem,
		manager.stopItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
