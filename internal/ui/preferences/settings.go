package preferences

import (
	"strconv"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/model"
	"github.com/aleksaa01/qsleepy/internal/core/schedule"
)

// Settings defines editable user preferences.
type Settings struct {
	DefaultKind    schedule.ActionKind
	DefaultSeconds int
	DefaultMinutes int
	DefaultHours   int

	ChimeEnabled bool
	WarningLead  time.Duration
	DryRun       bool
}

// DefaultSettings returns default settings for QSleepy.
func DefaultSettings() Settings {
	return Settings{
		DefaultKind:  schedule.KindNone,
		ChimeEnabled: true,
		WarningLead:  10 * time.Second,
	}
}

// SchedulerConfig converts settings to the scheduler's runtime config.
func (settings Settings) SchedulerConfig() model.SchedulerConfig {
	return model.SchedulerConfig{
		Defaults: model.FormDefaults{
			Seconds: strconv.Itoa(settings.DefaultSeconds),
			Minutes: strconv.Itoa(settings.DefaultMinutes),
			Hours:   strconv.Itoa(settings.DefaultHours),
			Kind:    settings.DefaultKind,
		},
		Warning: model.WarningConfig{
			Enabled: settings.ChimeEnabled,
			Lead:    settings.WarningLead,
		},
		TickInterval: time.Second,
	}
}
