//go:build windows

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
		return execCommand{name: "shutdown", args: []string{"/s", "/t", "0"}}
	default:
		return execCommand{name: "rundll32.exe", args: []string{"powrprof.dll,SetSuspendState", "0,1,0"}}
	}
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
