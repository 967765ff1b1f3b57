package tray

import (
	"testing"

	"github.com/aleksaa01/qsleepy/internal/i18n"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuRecorder struct {
	menus []*fyne.Menu
}

func (recorder *menuRecorder) SetSystemTrayMenu(menu *fyne.Menu) {
	recorder.menus = append(recorder.menus, menu)
}

func (recorder *menuRecorder) item(t *testing.T, label string) *fyne.MenuItem {
	t.Helper()
	require.NotEmpty(t, recorder.menus)
	for _, item := range recorder.menus[len(recorder.menus)-1].Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestStopItemFollowsCounting(t *testing.T) {
	i18n.SetLang("en")
	recorder := &menuRecorder{}
	stops := 0
	manager := New(recorder, Callbacks{OnStop: func() { stops++ }})

	assert.True(t, recorder.item(t, "Stop countdown").Disabled)
	assert.Equal(t, "QSleepy: Idle", recorder.item(t, "QSleepy: Idle").Label)

	manager.SetCounting(true)
	manager.SetStatus("Shutdown in 00:01:00")
	stop := recorder.item(t, "Stop countdown")
	assert.False(t, stop.Disabled)
	stop.Action()
	assert.Equal(t, 1, stops)
	assert.Equal(t, "Shutdown in 00:01:00", manager.Status())
	recorder.item(t, "QSleepy: Shutdown in 00:01:00")

	manager.SetCounting(false)
	assert.True(t, recorder.item(t, "Stop countdown").Disabled)
}

func TestNilCallbacksAreSafe(t *testing.T) {
	i18n.SetLang("en")
	recorder := &menuRecorder{}
	New(recorder, Callbacks{})
	assert.NotPanics(t, recorder.item(t, "Quit").Action)
	assert.NotPanics(t, recorder.item(t, "Show").Action)
}
