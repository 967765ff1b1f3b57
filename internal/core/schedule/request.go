package schedule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrNoActionSelected is returned when neither Sleep nor Shutdown is chosen.
var ErrNoActionSelected = errors.New("select what action to execute (shutdown/sleep)")

// InvalidDurationError reports a duration field that is not a non-negative
// integer.
type InvalidDurationError struct {
	Field string
	Value string
	Err   error
}

func (err *InvalidDurationError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", err.Field, err.Value, err.Err)
	}
	return fmt.Sprintf("invalid %s %q", err.Field, err.Value)
}

func (err *InvalidDurationError) Unwrap() error {
	return err.Err
}

// MaxTotalSeconds is the longest schedule whose delay fits a time.Duration.
const MaxTotalSeconds = math.MaxInt64 / int64(time.Second)

var (
	errNegative = errors.New("must not be negative")
	errTooLong  = fmt.Errorf("total exceeds %d seconds", MaxTotalSeconds)
)

// Fields holds the raw text of the three duration inputs.
type Fields struct {
	Seconds string
	Minutes string
	Hours   string
}

// Request is a validated schedule.
type Request struct {
	Kind         ActionKind
	TotalSeconds int
}

// Delay returns the request's delay.
func (request Request) Delay() time.Duration {
	return time.Duration(request.TotalSeconds) * time.Second
}

// TotalSeconds parses the fields and returns seconds + 60*minutes + 3600*hours.
// A total above MaxTotalSeconds is reported against the field that
// pushed it over.
func (fields Fields) TotalSeconds() (int, error) {
	parts := []struct {
		name  string
		value string
		unit  int64
	}{
		{"seconds", fields.Seconds, 1},
		{"minutes", fields.Minutes, 60},
		{"hours", fields.Hours, 3600},
	}
	limit := MaxTotalSeconds
	if int64(math.MaxInt) < limit {
		limit = int64(math.MaxInt)
	}

	var total int64
	for _, part := range parts {
		parsed, err := parseField(part.name, part.value)
		if err != nil {
			return 0, err
		}
		if int64(parsed) > (limit-total)/part.unit {
			return 0, &InvalidDurationError{Field: part.name, Value: part.value, Err: errTooLong}
		}
		total += int64(parsed) * part.unit
	}
	return int(total), nil
}

// NewRequest validates the fields and kind. Duration errors are reported
// before a missing action.
func NewRequest(fields Fields, kind ActionKind) (Request, error) {
	total, err := fields.TotalSeconds()
	if err != nil {
		return Request{}, err
	}
	if !kind.Valid() {
		return Request{}, ErrNoActionSelected
	}
	return Request{Kind: kind, TotalSeconds: total}, nil
}

func parseField(name, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InvalidDurationError{Field: name, Value: value, Err: err}
	}
	if parsed < 0 {
		return 0, &InvalidDurationError{Field: name, Value: value, Err: errNegative}
	}
	return parsed, nil
}

// FormatRemaining renders seconds as HH:MM:SS, clamping negatives to zero.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
