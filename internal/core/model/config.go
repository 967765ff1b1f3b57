package model

import (
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
)

// FormDefaults is the text the input form starts with.
type FormDefaults struct {
	Seconds string
	Minutes string
	Hours   string
	Kind    schedule.ActionKind
}

// WarningConfig controls the chime played shortly before an action fires.
type WarningConfig struct {
	Enabled bool
	Lead    time.Duration
}

// SchedulerConfig contains runtime settings for the scheduler screen.
type SchedulerConfig struct {
	Defaults     FormDefaults
	Warning      WarningConfig
	TickInterval time.Duration
}
