// Package scheduler hosts the main window: the input form that arms a power
// action and the countdown that replaces it while the action is pending.
package scheduler

import (
	"errors"
	"fmt"

	"github.com/aleksaa01/qsleepy/internal/audio"
	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/core/model"
	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/session"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"
	"github.com/aleksaa01/qsleepy/internal/i18n"
	"github.com/aleksaa01/qsleepy/internal/ui/countdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// State is the screen's current mode.
type State int

const (
	StateIdle State = iota
	StateCounting
)

// Status describes the screen for observers such as the tray.
type Status struct {
	State     State
	Kind      schedule.ActionKind
	Remaining int
}

// Options contains the screen's collaborators.
type Options struct {
	Clock    clock.Clock
	Commands session.CommandSource
	Config   model.SchedulerConfig
	Chime    audio.Player
	Logger   logrus.FieldLogger
	// OnStatus is called on every state change and countdown tick.
	OnStatus func(Status)
	// OnCancel runs when the form's Cancel button is pressed. Defaults to
	// closing the window.
	OnCancel func()
	// ReportError shows validation errors. Defaults to a dialog.
	ReportError func(error)
}

// Screen is the scheduler window. All methods run on the UI goroutine.
type Screen struct {
	window  fyne.Window
	options Options
	session *session.Controller

	form         fyne.CanvasObject
	seconds      *widget.Entry
	minutes      *widget.Entry
	hours        *widget.Entry
	actions      *widget.RadioGroup
	okButton     *widget.Button
	cancelButton *widget.Button

	display *countdown.Display
}

// New builds the input form and shows it in window.
func New(window fyne.Window, options Options) *Screen {
	screen := &Screen{
		window:  window,
		options: options,
		session: session.New(session.Options{
			Clock:    options.Clock,
			Commands: options.Commands,
			Config:   options.Config,
			Chime:    options.Chime,
			Logger:   options.Logger,
		}),
	}
	if screen.options.ReportError == nil {
		screen.options.ReportError = screen.showError
	}
	if screen.options.OnCancel == nil {
		screen.options.OnCancel = window.Close
	}

	screen.buildForm()
	window.SetContent(screen.form)
	return screen
}

func (screen *Screen) buildForm() {
	options := make([]string, 0, len(schedule.Kinds))
	for _, kind := range schedule.Kinds {
		options = append(options, i18n.T(kind.Label()))
	}
	screen.actions = widget.NewRadioGroup(options, nil)
	screen.actions.Horizontal = true

	defaults := screen.session.Config().Defaults
	screen.seconds = newDurationEntry(defaults.Seconds)
	screen.minutes = newDurationEntry(defaults.Minutes)
	screen.hours = newDurationEntry(defaults.Hours)
	if defaults.Kind.Valid() {
		screen.actions.SetSelected(i18n.T(defaults.Kind.Label()))
	}

	screen.okButton = widget.NewButton(i18n.T("OK"), screen.submitForm)
	screen.cancelButton = widget.NewButton(i18n.T("Cancel"), screen.Cancel)

	fields := container.NewHBox(
		widget.NewLabel(i18n.T("Seconds:")), screen.seconds,
		widget.NewLabel(i18n.T("Minutes:")), screen.minutes,
		widget.NewLabel(i18n.T("Hours:")), screen.hours,
	)
	buttons := container.NewHBox(screen.okButton, layout.NewSpacer(), screen.cancelButton)
	screen.form = container.NewVBox(screen.actions, fields, buttons)
}

func newDurationEntry(text string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(orZero(text))
	return entry
}

func orZero(text string) string {
	if text == "" {
		return "0"
	}
	return text
}

// State returns the current mode.
func (screen *Screen) State() State {
	if screen.session.Active() != nil {
		return StateCounting
	}
	return StateIdle
}

// Display returns the active countdown, or nil while idle.
func (screen *Screen) Display() *countdown.Display {
	return screen.display
}

// Submit validates the fields and, on success, arms the action and swaps in
// the countdown view. Validation errors are reported and leave the screen
// idle.
func (screen *Screen) Submit(fields schedule.Fields, kind schedule.ActionKind) error {
	clk := screen.session.Clock()
	active, err := screen.session.Arm(fields, kind, func(active *session.Schedule) timedaction.Observer {
		screen.display = countdown.New(countdown.Config{
			TotalSeconds: active.TotalSeconds,
			StartedAt:    active.StartedAt,
			Clock:        clk,
			TickInterval: screen.session.Config().TickInterval,
			OnClose:      func() { screen.reset(active) },
			OnTick:       func(remaining int) { screen.onTick(active, remaining) },
		})
		return screen.display
	})
	if err != nil {
		if !errors.Is(err, session.ErrScheduleActive) {
			screen.options.ReportError(err)
		}
		return err
	}

	screen.window.SetContent(screen.display.CanvasObject())
	screen.display.StartTicking()
	screen.publish(Status{State: StateCounting, Kind: active.Kind, Remaining: active.TotalSeconds})
	return nil
}

// Reconfigure replaces the config and command source. A running countdown
// keeps the command it was armed with; the form picks up the new defaults
// only while idle.
func (screen *Screen) Reconfigure(config model.SchedulerConfig, commands session.CommandSource) {
	screen.session.Reconfigure(config, commands)
	if screen.session.Active() != nil {
		return
	}
	defaults := config.Defaults
	screen.seconds.SetText(orZero(defaults.Seconds))
	screen.minutes.SetText(orZero(defaults.Minutes))
	screen.hours.SetText(orZero(defaults.Hours))
	if defaults.Kind.Valid() {
		screen.actions.SetSelected(i18n.T(defaults.Kind.Label()))
	} else {
		screen.actions.SetSelected("")
	}
}

// Stop dismisses the active countdown as if its Stop button were pressed.
func (screen *Screen) Stop() {
	if screen.display != nil {
		screen.display.Stop()
	}
}

// Cancel closes the application from the input form.
func (screen *Screen) Cancel() {
	screen.options.OnCancel()
}

func (screen *Screen) submitForm() {
	fields := schedule.Fields{
		Seconds: screen.seconds.Text,
		Minutes: screen.minutes.Text,
		Hours:   screen.hours.Text,
	}
	_ = screen.Submit(fields, screen.selectedKind())
}

func (screen *Screen) selectedKind() schedule.ActionKind {
	for _, kind := range schedule.Kinds {
		if screen.actions.Selected == i18n.T(kind.Label()) {
			return kind
		}
	}
	return schedule.KindNone
}

// reset runs when a countdown closes, either stopped by the user or notified
// by its firing action.
func (screen *Screen) reset(active *session.Schedule) {
	if !screen.session.Release(active) {
		return
	}
	screen.display = nil
	screen.window.SetContent(screen.form)
	screen.publish(Status{State: StateIdle})
}

func (screen *Screen) onTick(active *session.Schedule, remaining int) {
	screen.session.Observe(active, remaining)
	screen.publish(Status{State: StateCounting, Kind: active.Kind, Remaining: remaining})
}

func (screen *Screen) publish(status Status) {
	if screen.options.OnStatus != nil {
		screen.options.OnStatus(status)
	}
}

func (screen *Screen) showError(err error) {
	if errors.Is(err, schedule.ErrNoActionSelected) {
		dialog.ShowInformation("QSleepy", i18n.T("Select what action to execute (shutdown/sleep)!"), screen.window)
		return
	}
	var invalid *schedule.InvalidDurationError
	if errors.As(err, &invalid) {
		dialog.ShowError(fmt.Errorf("%s: %w", i18n.T("Invalid duration"), err), screen.window)
		return
	}
	dialog.ShowError(err, screen.window)
}
