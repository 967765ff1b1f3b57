package platform

import (
	"fmt"
	"io"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"

	"github.com/panjf2000/ants"
	"github.com/sirupsen/logrus"
)

// Runner executes commands on a worker pool so the UI goroutine never
// blocks on an OS call.
type Runner struct {
	pool   *ants.Pool
	logger logrus.FieldLogger
}

// NewRunner creates a Runner with size workers.
func NewRunner(size int, logger logrus.FieldLogger) (*Runner, error) {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Runner{pool: pool, logger: logger.WithField("component", "runner")}, nil
}

// Async wraps command so Execute only submits it to the pool. The returned
// error covers submission; failures of the command itself are logged.
func (runner *Runner) Async(name string, command timedaction.Command) timedaction.Command {
	return timedaction.CommandFunc(func() error {
		err := runner.pool.Submit(func() {
			if err := command.Execute(); err != nil {
				runner.logger.WithError(err).WithField("command", name).Error("power command failed")
				return
			}
			runner.logger.WithField("command", name).Info("power command issued")
		})
		if err != nil {
			return fmt.Errorf("submit %s: %w", name, err)
		}
		return nil
	})
}

// AsyncSet wraps every command of set.
func (runner *Runner) AsyncSet(set CommandSet) CommandSet {
	wrapped := make(map[schedule.ActionKind]timedaction.Command, len(set.commands))
	for kind, command := range set.commands {
		wrapped[kind] = runner.Async(string(kind), command)
	}
	return CommandSet{commands: wrapped}
}

// Release stops the pool's workers.
func (runner *Runner) Release() {
	runner.pool.Release()
}
