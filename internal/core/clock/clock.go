// Package clock abstracts delayed callbacks and wall-clock reads so the
// scheduler can be driven by a real event loop or by a manual fake in tests.
package clock

import "time"

// Clock provides the time operations the scheduler depends on.
type Clock interface {
	// AfterFunc calls f once after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
	// Now returns the current wall-clock time.
	Now() time.Time
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports false when the
	// callback already fired or was stopped.
	Stop() bool
}

// Real implements Clock with the time package.
type Real struct{}

// NewReal returns a Clock backed by the time package.
func NewReal() Real {
	return Real{}
}

// AfterFunc runs f in its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Now returns time.Now.
func (Real) Now() time.Time {
	return time.Now()
}

// Dispatching wraps a Clock so that every callback is handed to dispatch
// instead of running on the timer goroutine. Front ends pass their UI loop's
// post function (fyne.Do, tea.Program.Send) so all state mutation stays on
// one goroutine.
func Dispatching(base Clock, dispatch func(func())) Clock {
	return &dispatchingClock{base: base, dispatch: dispatch}
}

type dispatchingClock struct {
	base     Clock
	dispatch func(func())
}

func (clock *dispatchingClock) AfterFunc(d time.Duration, f func()) Timer {
	return clock.base.AfterFunc(d, func() {
		clock.dispatch(f)
	})
}

func (clock *dispatchingClock) Now() time.Time {
	return clock.base.Now()
}
