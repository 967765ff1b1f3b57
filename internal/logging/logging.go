// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const levelEnv = "QSLEEPY_LOG_LEVEL"

// New returns a text logger writing to out at the level named by
// QSLEEPY_LOG_LEVEL, defaulting to info.
func New(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(levelFromEnv(os.Getenv(levelEnv)))
	return logger
}

// OpenFile opens name inside dir for appending, creating dir if needed.
func OpenFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func levelFromEnv(value string) logrus.Level {
	value = strings.TrimSpace(value)
	if value == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// DryRunForced reports whether QSLEEPY_DRY_RUN requests dry-run commands.
func DryRunForced() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("QSLEEPY_DRY_RUN"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
