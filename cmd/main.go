package main

import (
	"context"
	"errors"
	"log"

	"pomodorotimer/internal/core/pomodoro"
	"pomodorotimer/internal/platform"
	"pomodorotimer/internal/scheduler"
	"pomodorotimer/internal/storage"
	"pomodorotimer/internal/ui/preferences"
	"pomodorotimer/internal/ui/progress"
	"pomodorotimer/internal/ui/timerview"
	"pomodorotimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "PomodoroTimer"

func main() {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	loaded, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID("com.pomodorotimer.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	engine := pomodoro.New(loaded.Effective.PomodoroConfig(), pomodoro.Options{})
	poller := scheduler.New(scheduler.Options{
		Interval: loaded.Effective.TickInterval,
		Dispatch: fyne.Do,
	})

	var controller *timerview.Controller
	view := timerview.NewWindow(fyneApp, func() {
		reportInvalid("toggle", controller.Toggle())
	})
	animator := progress.New(progress.Config{}, func(value float64) {
		fyne.Do(func() {
			view.SetProgress(value)
		})
	})

	var trayManager *tray.Manager
	controller = timerview.NewController(ctx, engine, poller, animator, view, func(current timerview.View) {
		if trayManager == nil {
			return
		}
		trayManager.SetStatus(tray.StatusLine(current.Phase, current.State))
		trayManager.SetAction(timerview.ActionTitle(current.State, current.Phase), current.State == pomodoro.StateRunning || current.State == pomodoro.StatePaused)
	})

	applySettings := func(updated preferences.Settings) {
		if err := controller.Apply(updated); err != nil {
			log.Printf("apply settings: %v", err)
		}
	}

	// Only fields edited in the window are written back; values coming
	// from the environment stay out of settings.yaml.
	prefsWindow := preferences.New(fyneApp, loaded.Effective, func(updated preferences.Settings) {
		loaded.File = preferences.MergeEdits(loaded.File, loaded.Effective, updated)
		loaded.Effective = updated
		applySettings(updated)
		if err := storage.SaveSettings(appName, loaded.File); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	if configPath, err := storage.ResolveConfigPath(appName); err == nil {
		err = storage.WatchSettingsFile(ctx, configPath, func(reloaded storage.LoadedSettings) {
			fyne.Do(func() {
				loaded = reloaded
				applySettings(reloaded.Effective)
				prefsWindow.UpdateSettings(reloaded.Effective)
			})
		}, func(err error) {
			log.Printf("reload settings: %v", err)
		})
		if err != nil {
			log.Printf("settings hot reload disabled: %v", err)
		}
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: view.Show,
			OnPrimary: func() {
				reportInvalid("toggle", controller.Toggle())
			},
			OnStop: func() {
				reportInvalid("stop", controller.Stop())
			},
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				poller.Stop()
				animator.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := engine.Subscribe(8)
	go func() {
		for event := range events {
			if event.Type == pomodoro.EventPhaseChange {
				log.Printf("phase %s finished, next: %s (%s)", event.Previous, event.Phase, event.Display)
			}
		}
	}()

	view.Window().SetMaster()
	controller.Refresh()
	view.Show()
	fyneApp.Run()
}

// reportInvalid logs engine misuse. Invalid-state errors mean the UI
// offered an action the engine does not allow.
func reportInvalid(op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, pomodoro.ErrInvalidState) {
		log.Printf("bug: %s: %v", op, err)
		return
	}
	log.Printf("%s: %v", op, err)
}
