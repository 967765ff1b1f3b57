package schedule

import "fmt"

// ActionKind selects which power command a schedule runs.
type ActionKind string

const (
	KindNone     ActionKind = ""
	KindSleep    ActionKind = "sleep"
	KindShutdown ActionKind = "shutdown"
)

// Kinds lists the selectable kinds in display order.
var Kinds = []ActionKind{KindSleep, KindShutdown}

// Label returns the user-facing option text.
func (kind ActionKind) Label() string {
	switch kind {
	case KindSleep:
		return "Sleep"
	case KindShutdown:
		return "Shutdown"
	default:
		return ""
	}
}

// Valid reports whether kind is one of Kinds.
func (kind ActionKind) Valid() bool {
	return kind == KindSleep || kind == KindShutdown
}

// KindFromLabel maps an option label back to its kind. Unknown labels,
// including the empty selection, map to KindNone.
func KindFromLabel(label string) ActionKind {
	for _, kind := range Kinds {
		if kind.Label() == label {
			return kind
		}
	}
	return KindNone
}

// ParseKind parses a stored kind name.
func ParseKind(value string) (ActionKind, error) {
	switch ActionKind(value) {
	case KindSleep, KindShutdown, KindNone:
		return ActionKind(value), nil
	}
	return KindNone, fmt.Errorf("unknown action kind %q", value)
}
