package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aleksaa01/qsleepy/internal/audio"
	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/i18n"
	"github.com/aleksaa01/qsleepy/internal/logging"
	"github.com/aleksaa01/qsleepy/internal/platform"
	"github.com/aleksaa01/qsleepy/internal/storage"
	"github.com/aleksaa01/qsleepy/internal/ui/preferences"
	"github.com/aleksaa01/qsleepy/internal/ui/scheduler"
	"github.com/aleksaa01/qsleepy/internal/ui/tray"
	"github.com/aleksaa01/qsleepy/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"
)

const appName = "QSleepy"

func main() {
	logger := logging.New(os.Stderr)

	guard, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is already running")
			return
		}
		logger.WithError(err).Warn("single instance check failed, continuing")
	}
	if guard != nil {
		defer func() {
			_ = guard.Release()
		}()
	}

	settings := preferences.DefaultSettings()
	var store *storage.Store
	if configDir, err := platform.ConfigDir(); err != nil {
		logger.WithError(err).Warn("config dir unavailable, settings will not persist")
	} else {
		store = storage.NewStore(configDir, appName)
		if loaded, err := store.Load(); err != nil {
			logger.WithError(err).WithField("path", store.Path()).Warn("load settings")
		} else {
			settings = loaded
		}
	}

	runner, err := platform.NewRunner(1, logger)
	if err != nil {
		logger.WithError(err).Fatal("start command runner")
	}
	defer runner.Release()

	commandsFor := func(settings preferences.Settings) platform.CommandSet {
		dryRun := settings.DryRun || logging.DryRunForced()
		if dryRun {
			logger.Info("dry run: power commands will only be logged")
		}
		return runner.AsyncSet(platform.NewCommandSet(platform.CommandOptions{DryRun: dryRun, Logger: logger}))
	}

	chime, err := audio.NewChime(logger)
	if err != nil {
		logger.WithError(err).Warn("audio unavailable, warning chime disabled")
	}

	fyneApp := app.NewWithID("com.qsleepy.app")
	idleIcon := resources.MustLogo(resources.IconIdle)
	activeIcon := resources.MustLogo(resources.IconActive)
	fyneApp.SetIcon(idleIcon)

	window := fyneApp.NewWindow(appName)
	desktopApp, hasTray := fyneApp.(desktop.App)

	var trayManager *tray.Manager
	screen := scheduler.New(window, scheduler.Options{
		Clock:    clock.Dispatching(clock.NewReal(), fyne.Do),
		Commands: commandsFor(settings),
		Config:   settings.SchedulerConfig(),
		Chime:    chime,
		Logger:   logger,
		OnCancel: fyneApp.Quit,
		OnStatus: func(status scheduler.Status) {
			if trayManager == nil {
				return
			}
			counting := status.State == scheduler.StateCounting
			trayManager.SetCounting(counting)
			trayManager.SetStatus(statusText(status))
			if counting {
				desktopApp.SetSystemTrayIcon(activeIcon)
			} else {
				desktopApp.SetSystemTrayIcon(idleIcon)
			}
		},
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		screen.Reconfigure(settings.SchedulerConfig(), commandsFor(settings))
		if store == nil {
			return
		}
		if err := store.Save(settings); err != nil {
			logger.WithError(err).WithField("path", store.Path()).Error("save settings")
		}
	})

	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnStop:        screen.Stop,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(idleIcon)
		window.SetCloseIntercept(window.Hide)
	} else {
		logger.Info("system tray unsupported, closing the window quits")
	}

	logger.WithFields(logrus.Fields{
		"lang":    i18n.Lang(),
		"dry_run": settings.DryRun || logging.DryRunForced(),
	}).Info("qsleepy started")
	window.ShowAndRun()
}

func statusText(status scheduler.Status) string {
	if status.State != scheduler.StateCounting {
		return i18n.T("Idle")
	}
	return fmt.Sprintf(i18n.T("%s in %s"), i18n.T(status.Kind.Label()), schedule.FormatRemaining(status.Remaining))
}
