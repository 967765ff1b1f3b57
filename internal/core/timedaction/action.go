package timedaction

import (
	"io"
	"sync"
	"time"

	"github.com/aleksaa01/qsleepy/internal/core/clock"

	"github.com/sirupsen/logrus"
)

// Command is a zero-argument external action.
type Command interface {
	Execute() error
}

// CommandFunc adapts a function to Command.
type CommandFunc func() error

// Execute calls fn.
func (fn CommandFunc) Execute() error {
	return fn()
}

// Observer is notified right before a TimedAction executes its command.
type Observer interface {
	Notify()
}

// Options contains optional collaborators for a TimedAction.
type Options struct {
	Logger logrus.FieldLogger
	// OnError receives the command's error. Defaults to logging it.
	OnError func(error)
}

// TimedAction runs a command once after a delay, notifying its observers
// first.
type TimedAction struct {
	mu            sync.Mutex
	clock         clock.Clock
	delay         time.Duration
	command       Command
	subscriptions []*Subscription
	timer         clock.Timer
	started       bool
	done          bool
	logger        logrus.FieldLogger
	onError       func(error)
}

// Subscription is an observer registration. Cancel detaches the observer.
type Subscription struct {
	mu       sync.Mutex
	observer Observer
	active   bool
}

// New creates a TimedAction. A negative delay is treated as zero.
func New(clk clock.Clock, delay time.Duration, command Command, options Options) *TimedAction {
	if delay < 0 {
		delay = 0
	}
	logger := options.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	action := &TimedAction{
		clock:   clk,
		delay:   delay,
		command: command,
		logger:  logger.WithField("component", "timedaction"),
		onError: options.OnError,
	}
	if action.onError == nil {
		action.onError = func(err error) {
			action.logger.WithError(err).Error("command failed")
		}
	}
	return action
}

// Delay returns the configured delay.
func (action *TimedAction) Delay() time.Duration {
	return action.delay
}

// Register appends observer to the notification list. Registrations are not
// de-duplicated.
func (action *TimedAction) Register(observer Observer) (*Subscription, error) {
	if isNil(observer) {
		return nil, &UnsupportedObserverError{Observer: observer}
	}
	subscription := &Subscription{observer: observer, active: true}
	action.mu.Lock()
	action.subscriptions = append(action.subscriptions, subscription)
	action.mu.Unlock()
	return subscription, nil
}

// Start arms the one-shot timer and returns immediately. Only the first call
// has an effect.
func (action *TimedAction) Start() {
	action.mu.Lock()
	defer action.mu.Unlock()
	if action.started {
		return
	}
	action.started = true
	action.timer = action.clock.AfterFunc(action.delay, action.run)
	action.logger.WithField("delay", action.delay).Debug("armed")
}

// Cancel prevents a started action from running. The timer may already
// have fired with run still queued on the dispatch loop, so the action is
// marked done whether or not the timer could be stopped. It reports whether
// a pending run was prevented.
func (action *TimedAction) Cancel() bool {
	action.mu.Lock()
	defer action.mu.Unlock()
	if !action.started || action.done {
		return false
	}
	action.done = true
	action.timer.Stop()
	action.logger.Debug("cancelled")
	return true
}

// Done reports whether the action has run or was cancelled.
func (action *TimedAction) Done() bool {
	action.mu.Lock()
	defer action.mu.Unlock()
	return action.done
}

func (action *TimedAction) run() {
	action.mu.Lock()
	if action.done {
		action.mu.Unlock()
		return
	}
	action.done = true
	subscriptions := append([]*Subscription(nil), action.subscriptions...)
	action.mu.Unlock()

	for _, subscription := range subscriptions {
		if observer, ok := subscription.take(); ok {
			observer.Notify()
		}
	}
	action.prune()

	action.logger.Info("firing command")
	if err := action.command.Execute(); err != nil {
		action.onError(err)
	}
}

func (action *TimedAction) prune() {
	action.mu.Lock()
	defer action.mu.Unlock()
	live := action.subscriptions[:0]
	for _, subscription := range action.subscriptions {
		if subscription.Active() {
			live = append(live, subscription)
		}
	}
	action.subscriptions = live
}

// Cancel detaches the observer. It is safe to call more than once.
func (subscription *Subscription) Cancel() {
	subscription.mu.Lock()
	subscription.active = false
	subscription.observer = nil
	subscription.mu.Unlock()
}

// Active reports whether the observer is still attached.
func (subscription *Subscription) Active() bool {
	subscription.mu.Lock()
	defer subscription.mu.Unlock()
	return subscription.active
}

func (subscription *Subscription) take() (Observer, bool) {
	subscription.mu.Lock()
	defer subscription.mu.Unlock()
	if !subscription.active {
		return nil, false
	}
	return subscription.observer, true
}
