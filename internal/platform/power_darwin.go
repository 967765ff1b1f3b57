//go:build darwin

package platform

import (
	"path/filepath"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"

	"github.com/sirupsen/logrus"
)

func newPowerCommand(kind schedule.ActionKind, logger logrus.FieldLogger) timedaction.Command {
	switch kind {
	case schedule.KindShutdown:
		return execCommand{name: "osascript", args: []string{"-e", `tell application "System Events" to shut down`}}
	default:
		return execCommand{name: "pmset", args: []string{"sleepnow"}}
	}
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}
