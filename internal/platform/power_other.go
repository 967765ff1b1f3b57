//go:build !linux && !windows && !darwin

package platform

import (
	"fmt"
	"path/filepath"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"

	"github.com/sirupsen/logrus"
)

func newPowerCommand(kind schedule.ActionKind, logger logrus.FieldLogger) timedaction.Command {
	return timedaction.CommandFunc(func() error {
		return fmt.Errorf("%s: %w", kind, ErrPowerUnsupported)
	})
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
