package session

import (
	"testing"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/clock"
	"github.com/aleksaa01/qsleepy/internal/core/model"
	"github.com/aleksaa01/qsleepy/internal/core/schedule"
	"github.com/aleksaa01/qsleepy/internal/core/timedaction"
	"github.com/aleksaa01/qsleepy/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)

type fixture struct {
	controller *Controller
	clock      *clock.Fake
	invoked    map[schedule.ActionKind]int
	notified   int
	chimes     int
}

func (f *fixture) Chime() {
	f.chimes++
}

// view releases its schedule when notified, like the front ends' countdowns.
type view struct {
	f        *fixture
	schedule *Schedule
}

func (v *view) Notify() {
	v.f.notified++
	v.f.controller.Release(v.schedule)
}

func newFixture(t *testing.T, clk clock.Clock, fake *clock.Fake, config model.SchedulerConfig) *fixture {
	t.Helper()
	f := &fixture{clock: fake, invoked: map[schedule.ActionKind]int{}}
	commands := map[schedule.ActionKind]timedaction.Command{}
	for _, kind := range schedule.Kinds {
		kind := kind
		commands[kind] = timedaction.CommandFunc(func() error {
			f.invoked[kind]++
			return nil
		})
	}
	f.controller = New(Options{
		Clock:    clk,
		Commands: platform.NewCommandSetFrom(commands),
		Config:   config,
		Chime:    f,
	})
	return f
}

func (f *fixture) arm(t *testing.T, fields schedule.Fields, kind schedule.ActionKind) *Schedule {
	t.Helper()
	s, err := f.controller.Arm(fields, kind, func(s *Schedule) timedaction.Observer {
		return &view{f: f, schedule: s}
	})
	require.NoError(t, err)
	return s
}

func TestArmFiresOnceAndFreesSlot(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{})

	s := f.arm(t, schedule.Fields{Seconds: "30", Minutes: "1"}, schedule.KindShutdown)
	assert.Equal(t, 90, s.TotalSeconds)
	assert.Same(t, s, f.controller.Active())

	fake.Advance(89 * time.Second)
	assert.Equal(t, 1, s.Remaining(fake.Now()))
	assert.Zero(t, f.invoked[schedule.KindShutdown])

	fake.Advance(time.Second)
	assert.Equal(t, 1, f.notified)
	assert.Equal(t, 1, f.invoked[schedule.KindShutdown])
	assert.Nil(t, f.controller.Active())
	assert.False(t, s.Attached())
}

func TestArmRejectsWhileActive(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{})
	f.arm(t, schedule.Fields{Seconds: "10"}, schedule.KindSleep)

	_, err := f.controller.Arm(schedule.Fields{Seconds: "1"}, schedule.KindSleep, func(s *Schedule) timedaction.Observer {
		t.Fatal("no view is built for a rejected schedule")
		return nil
	})
	assert.ErrorIs(t, err, ErrScheduleActive)
}

func TestArmValidationLeavesSlotEmpty(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{})

	_, err := f.controller.Arm(schedule.Fields{Seconds: "5"}, schedule.KindNone, nil)
	assert.ErrorIs(t, err, schedule.ErrNoActionSelected)

	_, err = f.controller.Arm(schedule.Fields{Hours: "3000000"}, schedule.KindShutdown, nil)
	var invalid *schedule.InvalidDurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "hours", invalid.Field)

	assert.Nil(t, f.controller.Active())
	assert.Zero(t, fake.Pending())
	fake.Advance(time.Hour)
	assert.Empty(t, f.invoked)
}

func TestReleaseDisarms(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{})
	s := f.arm(t, schedule.Fields{Seconds: "10"}, schedule.KindShutdown)

	assert.True(t, f.controller.Release(s))
	assert.False(t, f.controller.Release(s))
	assert.Nil(t, f.controller.Active())
	assert.False(t, s.Attached())

	fake.Advance(time.Hour)
	assert.Zero(t, f.notified)
	assert.Zero(t, f.invoked[schedule.KindShutdown])
}

func TestReleaseWhileRunIsQueued(t *testing.T) {
	fake := clock.NewFake(epoch)
	var queued []func()
	dispatching := clock.Dispatching(fake, func(fn func()) { queued = append(queued, fn) })
	f := newFixture(t, dispatching, fake, model.SchedulerConfig{})
	s := f.arm(t, schedule.Fields{Seconds: "3"}, schedule.KindShutdown)

	fake.Advance(3 * time.Second)
	require.NotEmpty(t, queued)

	require.True(t, f.controller.Release(s))
	for _, fn := range queued {
		fn()
	}
	assert.Zero(t, f.notified)
	assert.Zero(t, f.invoked[schedule.KindShutdown])
}

func TestObserveChimesOnce(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{
		Warning: model.WarningConfig{Enabled: true, Lead: 10 * time.Second},
	})
	s := f.arm(t, schedule.Fields{Seconds: "30"}, schedule.KindSleep)

	f.controller.Observe(s, 11)
	assert.Zero(t, f.chimes)
	f.controller.Observe(s, 10)
	f.controller.Observe(s, 9)
	assert.Equal(t, 1, f.chimes)
}

func TestObserveSkipsShortOrDisabled(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{
		Warning: model.WarningConfig{Enabled: true, Lead: 10 * time.Second},
	})
	short := f.arm(t, schedule.Fields{Seconds: "5"}, schedule.KindSleep)
	f.controller.Observe(short, 4)
	assert.Zero(t, f.chimes)
	f.controller.Release(short)

	f.controller.Reconfigure(model.SchedulerConfig{
		Warning: model.WarningConfig{Lead: 10 * time.Second},
	}, nil)
	long := f.arm(t, schedule.Fields{Seconds: "60"}, schedule.KindSleep)
	f.controller.Observe(long, 5)
	assert.Zero(t, f.chimes)
	assert.Equal(t, time.Second, f.controller.Config().TickInterval)
}

func TestReconfigureSwapsCommandsForNextSchedule(t *testing.T) {
	fake := clock.NewFake(epoch)
	f := newFixture(t, fake, fake, model.SchedulerConfig{})
	first := f.arm(t, schedule.Fields{Seconds: "2"}, schedule.KindSleep)

	swapped := 0
	f.controller.Reconfigure(model.SchedulerConfig{}, platform.NewCommandSetFrom(map[schedule.ActionKind]timedaction.Command{
		schedule.KindSleep: timedaction.CommandFunc(func() error {
			swapped++
			return nil
		}),
	}))
	fake.Advance(2 * time.Second)
	assert.Equal(t, 1, f.invoked[schedule.KindSleep], "the armed schedule keeps its command")
	assert.False(t, first.Attached())

	f.arm(t, schedule.Fields{Seconds: "2"}, schedule.KindSleep)
	fake.Advance(2 * time.Second)
	assert.Equal(t, 1, swapped)
}
