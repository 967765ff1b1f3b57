package main

import (
	"errors"
	"os"

	"github.com/aleksaa01/qsleepy/internal/audio"
	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/logging"
	"github.com/aleksaa01/qsleepy/internal/platform"
	"github.com/aleksaa01/qsleepy/internal/storage"
	"github.com/aleksaa01/qsleepy/internal/tui"
	"github.com/aleksaa01/qsleepy/internal/ui/preferences"

	tea "github.com/charmbracelet/bubbletea"
)

const appName = "QSleepy"

func main() {
	// The alt screen owns stdout; logs go to a file next to the settings.
	logger := logging.New(os.Stderr)

	guard, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is already running")
			os.Exit(1)
		}
		logger.WithError(err).Warn("single instance check failed, continuing")
	}
	if guard != nil {
		defer func() {
			_ = guard.Release()
		}()
	}

	settings := preferences.DefaultSettings()
	if configDir, err := platform.ConfigDir(); err == nil {
		store := storage.NewStore(configDir, appName)
		if logFile, err := logging.OpenFile(store.Dir(), "qsleepy-tui.log"); err == nil {
			defer logFile.Close()
			logger.SetOutput(logFile)
		}
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

	dryRun := settings.DryRun || logging.DryRunForced()
	commands := runner.AsyncSet(platform.NewCommandSet(platform.CommandOptions{DryRun: dryRun, Logger: logger}))

	var chime audio.Player = audio.Silent{}
	if settings.ChimeEnabled {
		player, err := audio.NewChime(logger)
		if err != nil {
			logger.WithError(err).Warn("audio unavailable, warning chime disabled")
		}
		chime = player
	}

	var program *tea.Program
	model := tui.New(tui.Options{
		Clock:    clock.Dispatching(clock.NewReal(), tui.Dispatcher(func(msg tea.Msg) { program.Send(msg) })),
		Commands: commands,
		Config:   settings.SchedulerConfig(),
		Chime:    chime,
		Logger:   logger,
	})
	program = tea.NewProgram(model, tea.WithAltScreen())

	logger.WithField("dry_run", dryRun).Info("qsleepy-tui started")
	if _, err := program.Run(); err != nil {
		logger.WithError(err).Error("terminal ui")
		os.Exit(1)
	}
}
