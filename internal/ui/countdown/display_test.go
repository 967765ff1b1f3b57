package countdown

import (
	"testing"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/i18n"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

func newDisplay(t *testing.T, total int, fake *clock.Fake, closes *int, ticks *[]int) *Display {
	t.Helper()
	i18n.SetLang("en")
	test.NewTempApp(t)
	return New(Config{
		TotalSeconds: total,
		StartedAt:    fake.Now(),
		Clock:        fake,
		OnClose:      func() { *closes++ },
		OnTick:       func(remaining int) { *ticks = append(*ticks, remaining) },
	})
}

func TestInitialText(t *testing.T) {
	fake := clock.NewFake(epoch)
	closes := 0
	var ticks []int
	display := newDisplay(t, 5, fake, &closes, &ticks)

	assert.Equal(t, "Time left: 5", display.Text())
	assert.Equal(t, 5, display.Remaining())
}

func TestTicksFollowWallClock(t *testing.T) {
	fake := clock.NewFake(epoch)
	closes := 0
	var ticks []int
	display := newDisplay(t, 5, fake, &closes, &ticks)
	display.StartTicking()

	fake.Advance(3 * time.Second)
	assert.Equal(t, []int{4, 3, 2}, ticks)
	assert.Equal(t, "Time left: 2", display.Text())
}

func TestRemainingIgnoresTickJitter(t *testing.T) {
	fake := clock.NewFake(epoch)
	closes := 0
	var ticks []int
	display := newDisplay(t, 60, fake, &closes, &ticks)

	// A stalled event loop delivers one late tick instead of ten.
	fake.Advance(10*time.Second + 700*time.Millisecond)
	display.Tick()
	assert.Equal(t, []int{50}, ticks)
	assert.Equal(t, "Time left: 50", display.Text())
}

func TestNegativeRemainingClampedInLabel(t *testing.T) {
	fake := clock.NewFake(epoch)
	closes := 0
	var ticks []int
	display := newDisplay(t, 2, fake, &closes, &ticks)

	fake.Advance(3500 * time.Millisecond)
	display.Tick()
	assert.Equal(t, -1, display.Remaining())
	assert.Equal(t, []int{-1}, ticks)
	assert.Equal(t, "Time left: 0", display.Text())
}

func TestStopClosesOnceAndStopsTicking(t *testing.T) {
	fake := clock.NewFake(epoch)
	closes := 0
	var ticks []int
	display := newDisplay(t, 30, fake, &closes, &ticks)
	display.StartTicking()
	fake.Advance(time.Second)

	test.Tap(display.stopButton)
	assert.Equal(t, 1, closes)
	assert.True(t, display.Closed())
	assert.True(t, display.stopButton.Disabled())
	assert.Zero(t, fake.Pending())

	display.Notify()
	display.Stop()
	display.Tick()
	fake.Advance(time.Minute)
	assert.Equal(t, 1, closes)
	assert.Equal(t, []int{29}, ticks)
}

func TestNotifyUsesSameTeardown(t *testing.T) {
	fake := clock.NewFake(epoch)
	closes := 0
	var ticks []int
	display := newDisplay(t, 30, fake, &closes, &ticks)
	display.StartTicking()

	display.Notify()
	assert.Equal(t, 1, closes)
	assert.Zero(t, fake.Pending())
}
