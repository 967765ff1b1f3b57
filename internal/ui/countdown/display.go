// Package countdown renders the time left before a scheduled action and
// offers the Stop control that dismisses it.
package countdown

import (
	"fmt"
	"math"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines a countdown session.
type Config struct {
	TotalSeconds int
	StartedAt    time.Time
	Clock        clock.Clock
	TickInterval time.Duration
	// OnClose runs exactly once when the display is dismissed, whether by
	// Stop or by Notify.
	OnClose func()
	// OnTick receives the unclamped remaining seconds after every render.
	OnTick func(remaining int)
}

// Display is the countdown view. All methods must be called on the UI
// goroutine.
type Display struct {
	config     Config
	label      *widget.Label
	stopButton *widget.Button
	content    *fyne.Container
	ticker     clock.Timer
	closed     bool
}

// New creates a countdown display showing the full duration.
func New(config Config) *Display {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	display := &Display{
		config: config,
		label:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	display.stopButton = widget.NewButton(i18n.T("Stop"), display.Stop)
	display.content = container.NewVBox(display.label, display.stopButton)
	display.render(config.TotalSeconds)
	return display
}

// CanvasObject returns the view's root object.
func (display *Display) CanvasObject() fyne.CanvasObject {
	return display.content
}

// Text returns the label text currently shown.
func (display *Display) Text() string {
	return display.label.Text
}

// Remaining returns total - floor(now - startedAt). It is recomputed from
// the wall clock on every call and may be negative.
func (display *Display) Remaining() int {
	elapsed := display.config.Clock.Now().Sub(display.config.StartedAt)
	return display.config.TotalSeconds - int(math.Floor(elapsed.Seconds()))
}

// StartTicking schedules periodic Tick calls until the display closes.
func (display *Display) StartTicking() {
	if display.closed || display.ticker != nil {
		return
	}
	display.scheduleTick()
}

// Tick re-renders the remaining time.
func (display *Display) Tick() {
	if display.closed {
		return
	}
	remaining := display.Remaining()
	display.render(remaining)
	if display.config.OnTick != nil {
		display.config.OnTick(remaining)
	}
}

// Notify dismisses the display because its action is about to fire.
func (display *Display) Notify() {
	display.close()
}

// Stop dismisses the display at the user's request.
func (display *Display) Stop() {
	display.close()
}

// Closed reports whether the display has been dismissed.
func (display *Display) Closed() bool {
	return display.closed
}

func (display *Display) scheduleTick() {
	display.ticker = display.config.Clock.AfterFunc(display.config.TickInterval, func() {
		display.Tick()
		if !display.closed {
			display.scheduleTick()
		}
	})
}

func (display *Display) close() {
	if display.closed {
		return
	}
	display.closed = true
	if display.config.OnClose != nil {
		display.config.OnClose()
	}
	if display.ticker != nil {
		display.ticker.Stop()
		display.ticker = nil
	}
	display.stopButton.Disable()
}

func (display *Display) render(remaining int) {
	// The last tick before firing can land past the deadline.
	if remaining < 0 {
		remaining = 0
	}
	display.label.SetText(fmt.Sprintf(i18n.T("Time left: %d"), remaining))
}
