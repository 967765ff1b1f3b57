package tray

import (
	"fmt"

	"github.com/aleksaa01/qsleepy/internal/i18n"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        MenuSetter
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	stopItem   *fyne.MenuItem
	status     string
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    i18n.T("Idle"),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.stopItem = fyne.NewMenuItem(i18n.T("Stop countdown"), func() {
		call(manager.callbacks.OnStop)
	})
	manager.stopItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.status = status
	manager.refreshMenu()
}

// SetCounting toggles countdown-related menu items.
func (manager *Manager) SetCounting(counting bool) {
	manager.stopItem.Disabled = !counting
	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.status
}

func (manager *Manager) refreshMenu() {
	manager.statusItem.Label = fmt.Sprintf("QSleepy: %s", manager.status)
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("QSleepy",
		manager.statusItem,
		fyne.NewMenuItem(i18n.T("Show"), func() {
			call(manager.callbacks.OnShow)
		}),
		manager.stopItem,
		fyne.NewMenuItem(i18n.T("Preferences"), func() {
			call(manager.callbacks.OnPreferences)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Quit"), func() {
			call(manager.callbacks.OnQuit)
		}),
	))
}

func call(callback func()) {
	if callback != nil {
		callback()
	}
}
