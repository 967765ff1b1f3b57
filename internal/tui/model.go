// Package tui runs the scheduler in a terminal: the same form and countdown
// as the desktop window, rendered with Bubble Tea.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleksaa01/qsleepy/internal/audio"
	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/core/model"
	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/session"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"
	"github.com/aleksaa01/qsleepy/internal/i18n"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// callbackMsg carries a timer callback onto the Bubble Tea loop.
type callbackMsg func()

// Dispatcher returns a dispatch function for clock.Dispatching that runs
// callbacks inside Update.
func Dispatcher(send func(tea.Msg)) func(func()) {
	return func(f func()) {
		send(callbackMsg(f))
	}
}

// Options contains the model's collaborators.
type Options struct {
	Clock    clock.Clock
	Commands session.CommandSource
	Config   model.SchedulerConfig
	Chime    audio.Player
	Logger   logrus.FieldLogger
}

const (
	fieldSeconds = iota
	fieldMinutes
	fieldHours
	fieldCount
)

var fieldLabels = [fieldCount]string{"Seconds:", "Minutes:", "Hours:"}

// Model is the terminal scheduler. It implements tea.Model with pointer
// receivers because timer callbacks mutate it from inside Update.
type Model struct {
	session *session.Controller
	styles  Styles

	inputs [fieldCount]textinput.Model
	focus  int
	kind   schedule.ActionKind
	err    error

	active   *countdown
	quitting bool
}

// New builds the model showing the input form.
func New(options Options) *Model {
	m := &Model{
		session: session.New(session.Options{
			Clock:    options.Clock,
			Commands: options.Commands,
			Config:   options.Config,
			Chime:    options.Chime,
			Logger:   options.Logger,
		}),
		styles: DefaultStyles(),
		kind:   options.Config.Defaults.Kind,
	}
	defaults := options.Config.Defaults
	for i, value := range []string{defaults.Seconds, defaults.Minutes, defaults.Hours} {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 9
		input.Width = 10
		if value == "" {
			value = "0"
		}
		input.SetValue(value)
		m.inputs[i] = input
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Counting reports whether a countdown is active.
func (m *Model) Counting() bool {
	return m.active != nil
}

// Remaining returns the seconds shown by the countdown, or zero while idle.
func (m *Model) Remaining() int {
	if m.active == nil {
		return 0
	}
	return m.active.shown
}

// Err returns the last validation error, cleared by the next change.
func (m *Model) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if m.active != nil {
			return m, m.updateCountdown(msg)
		}
		return m, m.updateForm(msg)
	}
	return m, nil
}

func (m *Model) updateCountdown(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s", "S", "esc":
		m.Stop()
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return m.quit()
	case tea.KeyEnter:
		_ = m.Submit(m.fields(), m.kind)
		return nil
	case tea.KeyTab:
		return m.setFocus((m.focus + 1) % fieldCount)
	case tea.KeyShiftTab:
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case tea.KeyLeft:
		m.kind = schedule.Kinds[0]
		m.err = nil
		return nil
	case tea.KeyRight:
		m.kind = schedule.Kinds[len(schedule.Kinds)-1]
		m.err = nil
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.err = nil
	return cmd
}

func (m *Model) setFocus(index int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = index
	return m.inputs[m.focus].Focus()
}

func (m *Model) fields() schedule.Fields {
	return schedule.Fields{
		Seconds: m.inputs[fieldSeconds].Value(),
		Minutes: m.inputs[fieldMinutes].Value(),
		Hours:   m.inputs[fieldHours].Value(),
	}
}

// Submit validates the fields and, on success, arms the action and switches
// to the countdown view. Validation errors are kept for the error line.
func (m *Model) Submit(fields schedule.Fields, kind schedule.ActionKind) error {
	_, err := m.session.Arm(fields, kind, func(armed *session.Schedule) timedaction.Observer {
		m.active = &countdown{model: m, schedule: armed, shown: armed.TotalSeconds}
		return m.active
	})
	if err != nil {
		if !errors.Is(err, session.ErrScheduleActive) {
			m.err = err
		}
		return err
	}
	m.err = nil
	m.active.scheduleTick()
	return nil
}

// Stop dismisses the active countdown and disarms its action.
func (m *Model) Stop() {
	if m.active != nil {
		m.active.close()
	}
}

func (m *Model) reset(active *countdown) {
	if m.session.Release(active.schedule) {
		m.active = nil
	}
}

func (m *Model) quit() tea.Cmd {
	m.Stop()
	m.quitting = true
	return tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.active != nil {
		return m.countdownView()
	}
	return m.formView()
}

func (m *Model) formView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("QSleepy"))
	b.WriteString("\n\n")

	options := make([]string, 0, len(schedule.Kinds))
	for _, kind := range schedule.Kinds {
		if kind == m.kind {
			options = append(options, m.styles.Selected.Render("(•) "+i18n.T(kind.Label())))
		} else {
			options = append(options, m.styles.Option.Render("( ) "+i18n.T(kind.Label())))
		}
	}
	b.WriteString(strings.Join(options, "   "))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.Focused
		}
		b.WriteString(label.Render(i18n.T(fieldLabels[i])))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(errorText(m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(i18n.T("tab: next field • ←/→: action • enter: OK • esc: cancel")))
	return b.String()
}

func (m *Model) countdownView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(i18n.T(m.active.schedule.Kind.Label())))
	b.WriteString("\n")
	b.WriteString(m.styles.Time.Render(
		fmt.Sprintf(i18n.T("Time left: %d"), m.active.shown) + "\n" + schedule.FormatRemaining(m.active.shown),
	))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(i18n.T("s: stop")))
	return b.String()
}

func errorText(err error) string {
	if errors.Is(err, schedule.ErrNoActionSelected) {
		return i18n.T("Select what action to execute (shutdown/sleep)!")
	}
	var invalid *schedule.InvalidDurationError
	if errors.As(err, &invalid) {
		return fmt.Sprintf("%s: %v", i18n.T("Invalid duration"), err)
	}
	return err.Error()
}
