//go:build linux

package platform

import (
	"fmt"
	"path/filepath"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"

	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

const (
	logindDestination = "org.freedesktop.login1"
	logindPath        = dbus.ObjectPath("/org/freedesktop/login1")
	logindManager     = "org.freedesktop.login1.Manager"
)

// logindCommand asks systemd-logind over the system bus and falls back to
// systemctl when the bus or the call is unavailable.
type logindCommand struct {
	method   string
	fallback execCommand
	logger   logrus.FieldLogger
}

func newPowerCommand(kind schedule.ActionKind, logger logrus.FieldLogger) timedaction.Command {
	switch kind {
	case schedule.KindShutdown:
		return logindCommand{
			method:   "PowerOff",
			fallback: execCommand{name: "systemctl", args: []string{"poweroff"}},
			logger:   logger,
		}
	default:
		return logindCommand{
			method:   "Suspend",
			fallback: execCommand{name: "systemctl", args: []string{"suspend"}},
			logger:   logger,
		}
	}
}

func (command logindCommand) Execute() error {
	err := command.callLogind()
	if err == nil {
		return nil
	}
	command.logger.WithError(err).WithField("method", command.method).Warn("logind call failed, falling back to systemctl")
	return command.fallback.Execute()
}

func (command logindCommand) callLogind() error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return fmt.Errorf("connect system bus: %w", err)
	}
	// The boolean argument is "interactive": allow polkit to prompt.
	call := conn.Object(logindDestination, logindPath).Call(logindManager+"."+command.method, 0, true)
	if call.Err != nil {
		return fmt.Errorf("logind %s: %w", command.method, call.Err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
