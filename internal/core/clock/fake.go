package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Callbacks run synchronously on the
// goroutine calling Advance, in deadline order.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	nextID  int
	pending []*fakeTimer
}

type fakeTimer struct {
	clock    *Fake
	id       int
	deadline time.Time
	f        func()
}

// NewFake returns a Fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake's current time.
func (fake *Fake) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// AfterFunc schedules f to run once the fake has been advanced by d.
func (fake *Fake) AfterFunc(d time.Duration, f func()) Timer {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if d < 0 {
		d = 0
	}
	fake.nextID++
	timer := &fakeTimer{clock: fake, id: fake.nextID, deadline: fake.now.Add(d), f: f}
	fake.pending = append(fake.pending, timer)
	return timer
}

// Advance moves time forward by d, firing every callback whose deadline is
// reached. Callbacks scheduled while advancing fire too if they fall inside
// the window.
func (fake *Fake) Advance(d time.Duration) {
	fake.mu.Lock()
	target := fake.now.Add(d)
	fake.mu.Unlock()

	for {
		timer := fake.popDue(target)
		if timer == nil {
			break
		}
		timer.f()
	}

	fake.mu.Lock()
	if fake.now.Before(target) {
		fake.now = target
	}
	fake.mu.Unlock()
}

// Pending returns the number of callbacks not yet fired or stopped.
func (fake *Fake) Pending() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return len(fake.pending)
}

func (fake *Fake) popDue(target time.Time) *fakeTimer {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.pending) == 0 {
		return nil
	}
	sort.SliceStable(fake.pending, func(i, j int) bool {
		if fake.pending[i].deadline.Equal(fake.pending[j].deadline) {
			return fake.pending[i].id < fake.pending[j].id
		}
		return fake.pending[i].deadline.Before(fake.pending[j].deadline)
	})
	next := fake.pending[0]
	if next.deadline.After(target) {
		return nil
	}
	fake.pending = fake.pending[1:]
	if next.deadline.After(fake.now) {
		fake.now = next.deadline
	}
	return next
}

func (timer *fakeTimer) Stop() bool {
	fake := timer.clock
	fake.mu.Lock()
	defer fake.mu.Unlock()
	for i, pending := range fake.pending {
		if pending == timer {
			fake.pending = append(fake.pending[:i], fake.pending[i+1:]...)
			return true
		}
	}
	return false
}
