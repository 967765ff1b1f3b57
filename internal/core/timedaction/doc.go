// Package timedaction runs a single external command after a delay.
//
// Observers registered with a TimedAction are notified in registration order
// immediately before the command executes. A Subscription that has been
// cancelled is skipped silently and pruned, so a view that tore itself down
// never receives a late notification. The command runs at most once per
// TimedAction, and a cancelled TimedAction never runs it.
package timedaction
