package platform

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"

	"github.com/sirupsen/logrus"
)

// ErrPowerUnsupported indicates the OS has no known power command.
var ErrPowerUnsupported = errors.New("power commands unsupported on this platform")

// CommandOptions configures the power command set.
type CommandOptions struct {
	// DryRun replaces every OS call with a log line.
	DryRun bool
	Logger logrus.FieldLogger
}

// CommandSet maps action kinds to power commands.
type CommandSet struct {
	commands map[schedule.ActionKind]timedaction.Command
}

// NewCommandSet builds the power commands for the running OS.
func NewCommandSet(options CommandOptions) CommandSet {
	logger := options.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	logger = logger.WithField("component", "power")

	commands := make(map[schedule.ActionKind]timedaction.Command, len(schedule.Kinds))
	for _, kind := range schedule.Kinds {
		if options.DryRun {
			commands[kind] = dryRunCommand{kind: kind, logger: logger}
			continue
		}
		commands[kind] = newPowerCommand(kind, logger)
	}
	return CommandSet{commands: commands}
}

// NewCommandSetFrom builds a CommandSet from explicit commands.
func NewCommandSetFrom(commands map[schedule.ActionKind]timedaction.Command) CommandSet {
	copied := make(map[schedule.ActionKind]timedaction.Command, len(commands))
	for kind, command := range commands {
		copied[kind] = command
	}
	return CommandSet{commands: copied}
}

// For returns the command for kind.
func (set CommandSet) For(kind schedule.ActionKind) (timedaction.Command, bool) {
	command, ok := set.commands[kind]
	return command, ok
}

type dryRunCommand struct {
	kind   schedule.ActionKind
	logger logrus.FieldLogger
}

func (command dryRunCommand) Execute() error {
	command.logger.WithField("kind", command.kind).Warn("dry run: power command skipped")
	return nil
}

func runCommand(name string, args ...string) error {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s failed: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

type execCommand struct {
	name string
	args []string
}

func (command execCommand) Execute() error {
	return runCommand(command.name, command.args...)
}
