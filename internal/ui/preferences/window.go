package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	kind     *widget.RadioGroup
	seconds  *widget.Entry
	minutes  *widget.Entry
	hours    *widget.Entry
	chime    *widget.Check
	lead     *widget.Entry
	dryRun   *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow(i18n.T("QSleepy Settings"))

	options := make([]string, 0, len(schedule.Kinds))
	for _, kind := range schedule.Kinds {
		options = append(options, i18n.T(kind.Label()))
	}
	kind := widget.NewRadioGroup(options, nil)
	kind.Horizontal = true

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,
		kind:     kind,
		seconds:  widget.NewEntry(),
		minutes:  widget.NewEntry(),
		hours:    widget.NewEntry(),
		chime:    widget.NewCheck(i18n.T("Play a chime before the action"), nil),
		lead:     widget.NewEntry(),
		dryRun:   widget.NewCheck(i18n.T("Dry run (log instead of acting)"), nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle(i18n.T("Defaults"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		kind,
		container.NewHBox(widget.NewLabel(i18n.T("Seconds:")), prefs.seconds, widget.NewLabel(i18n.T("Minutes:")), prefs.minutes, widget.NewLabel(i18n.T("Hours:")), prefs.hours),
		widget.NewLabelWithStyle(i18n.T("Warning"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.chime,
		container.NewHBox(widget.NewLabel(i18n.T("Seconds before firing")), prefs.lead),
		prefs.dryRun,
	)

	saveButton := widget.NewButton(i18n.T("Save"), prefs.handleSave)
	cancelButton := widget.NewButton(i18n.T("Cancel"), func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 320))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	if settings.DefaultKind.Valid() {
		prefs.kind.SetSelected(i18n.T(settings.DefaultKind.Label()))
	} else {
		prefs.kind.SetSelected("")
	}
	prefs.seconds.SetText(strconv.Itoa(settings.DefaultSeconds))
	prefs.minutes.SetText(strconv.Itoa(settings.DefaultMinutes))
	prefs.hours.SetText(strconv.Itoa(settings.DefaultHours))
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.lead.SetText(fmt.Sprintf("%d", int(settings.WarningLead.Seconds())))
	prefs.dryRun.SetChecked(settings.DryRun)
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.DefaultKind = schedule.KindNone
	for _, kind := range schedule.Kinds {
		if prefs.kind.Selected == i18n.T(kind.Label()) {
			settings.DefaultKind = kind
		}
	}
	if value, ok := parseNonNegativeInt(prefs.seconds.Text); ok {
		settings.DefaultSeconds = value
	}
	if value, ok := parseNonNegativeInt(prefs.minutes.Text); ok {
		settings.DefaultMinutes = value
	}
	if value, ok := parseNonNegativeInt(prefs.hours.Text); ok {
		settings.DefaultHours = value
	}
	if value, ok := parseNonNegativeInt(prefs.lead.Text); ok && value > 0 {
		settings.WarningLead = time.Duration(value) * time.Second
	}
	settings.ChimeEnabled = prefs.chime.Checked
	settings.DryRun = prefs.dryRun.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
