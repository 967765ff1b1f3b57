// Package session owns the single schedule slot shared by the desktop and
// terminal front ends: it validates a form submission, arms the action,
// releases the slot when the countdown view closes and decides when the
// warning chime plays.
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/aleksaa01/qsleepy/internal/audio"
	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/core/model"
	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"

	"github.com/sirupsen/logrus"
)

// ErrScheduleActive is returned when a schedule is submitted while another
// one is counting down.
var ErrScheduleActive = errors.New("a schedule is already active")

// CommandSource resolves the command for an action kind.
type CommandSource interface {
	For(kind schedule.ActionKind) (timedaction.Command, bool)
}

// Options contains the controller's collaborators.
type Options struct {
	Clock    clock.Clock
	Commands CommandSource
	Config   model.SchedulerConfig
	Chime    audio.Player
	Logger   logrus.FieldLogger
}

// Schedule is an armed action occupying the slot.
type Schedule struct {
	Kind         schedule.ActionKind
	TotalSeconds int
	StartedAt    time.Time

	action       *timedaction.TimedAction
	subscription *timedaction.Subscription
	warned       bool
}

// Remaining returns TotalSeconds - floor(now - StartedAt). It may be
// negative.
func (s *Schedule) Remaining(now time.Time) int {
	elapsed := now.Sub(s.StartedAt)
	return s.TotalSeconds - int(math.Floor(elapsed.Seconds()))
}

// Attached reports whether the schedule's view is still subscribed.
func (s *Schedule) Attached() bool {
	return s.subscription.Active()
}

// Controller holds at most one Schedule. All methods run on the UI
// goroutine.
type Controller struct {
	options Options
	logger  logrus.FieldLogger
	active  *Schedule
}

// New creates an idle controller.
func New(options Options) *Controller {
	logger := options.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	if options.Chime == nil {
		options.Chime = audio.Silent{}
	}
	if options.Config.TickInterval <= 0 {
		options.Config.TickInterval = time.Second
	}
	return &Controller{
		options: options,
		logger:  logger.WithField("component", "session"),
	}
}

// Config returns the current config.
func (c *Controller) Config() model.SchedulerConfig {
	return c.options.Config
}

// Clock returns the controller's clock.
func (c *Controller) Clock() clock.Clock {
	return c.options.Clock
}

// Reconfigure replaces the config and, when commands is non-nil, the command
// source. An armed schedule keeps its command.
func (c *Controller) Reconfigure(config model.SchedulerConfig, commands CommandSource) {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	c.options.Config = config
	if commands != nil {
		c.options.Commands = commands
	}
}

// Active returns the armed schedule, or nil while idle.
func (c *Controller) Active() *Schedule {
	return c.active
}

// Arm validates the fields and kind, then arms the command. newView builds
// the observer notified right before the command runs; it receives the
// schedule so the view can release it when it closes.
func (c *Controller) Arm(fields schedule.Fields, kind schedule.ActionKind, newView func(*Schedule) timedaction.Observer) (*Schedule, error) {
	if c.active != nil {
		return nil, ErrScheduleActive
	}

	request, err := schedule.NewRequest(fields, kind)
	if err != nil {
		c.logger.WithError(err).Info("schedule rejected")
		return nil, err
	}
	command, ok := c.options.Commands.For(request.Kind)
	if !ok {
		return nil, fmt.Errorf("no command for %s", request.Kind)
	}

	clk := c.options.Clock
	s := &Schedule{
		Kind:         request.Kind,
		TotalSeconds: request.TotalSeconds,
		StartedAt:    clk.Now(),
	}
	s.action = timedaction.New(clk, request.Delay(), command, timedaction.Options{Logger: c.logger})
	subscription, err := s.action.Register(newView(s))
	if err != nil {
		panic(fmt.Sprintf("register countdown: %v", err))
	}
	s.subscription = subscription

	c.active = s
	s.action.Start()
	c.logger.WithFields(logrus.Fields{
		"kind":          request.Kind,
		"total_seconds": request.TotalSeconds,
	}).Info("schedule armed")
	return s, nil
}

// Release empties the slot if s occupies it, disarming the action and
// detaching its view. It reports whether s was active.
func (c *Controller) Release(s *Schedule) bool {
	if s == nil || c.active != s {
		return false
	}
	c.active = nil
	if s.action.Cancel() {
		c.logger.WithField("kind", s.Kind).Info("schedule stopped")
	}
	s.subscription.Cancel()
	return true
}

// Observe applies the warning rule to a countdown tick: the chime plays
// once, when remaining first reaches the lead time, and only for schedules
// longer than the lead.
func (c *Controller) Observe(s *Schedule, remaining int) {
	warning := c.options.Config.Warning
	lead := int(warning.Lead.Seconds())
	if warning.Enabled && !s.warned && s.TotalSeconds > lead && remaining <= lead {
		s.warned = true
		c.options.Chime.Chime()
	}
}
