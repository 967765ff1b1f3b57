package tui

import (
	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/core/session"
)

// countdown is the terminal counterpart of the desktop countdown view. It
// observes its schedule's action and closes when the action fires.
type countdown struct {
	model    *Model
	schedule *session.Schedule
	ticker   clock.Timer
	shown    int
	closed   bool
}

// Notify closes the countdown because its action is about to fire.
func (c *countdown) Notify() {
	c.close()
}

func (c *countdown) scheduleTick() {
	controller := c.model.session
	c.ticker = controller.Clock().AfterFunc(controller.Config().TickInterval, func() {
		if c.closed {
			return
		}
		c.tick()
		if !c.closed {
			c.scheduleTick()
		}
	})
}

func (c *countdown) tick() {
	controller := c.model.session
	remaining := c.schedule.Remaining(controller.Clock().Now())
	c.shown = max(remaining, 0)
	controller.Observe(c.schedule, remaining)
}

func (c *countdown) close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.model.reset(c)
}
