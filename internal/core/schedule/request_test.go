package schedule

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalSeconds(t *testing.T) {
	cases := []struct {
		fields Fields
		want   int
	}{
		{Fields{"30", "1", "0"}, 90},
		{Fields{"0", "0", "0"}, 0},
		{Fields{"5", "0", "0"}, 5},
		{Fields{"0", "0", "2"}, 7200},
		{Fields{"59", "59", "23"}, 86399},
		{Fields{" 7 ", "", "1"}, 3607},
		{Fields{"120", "90", "0"}, 5520},
	}
	for _, tc := range cases {
		got, err := tc.fields.TotalSeconds()
		require.NoError(t, err, "%+v", tc.fields)
		assert.Equal(t, tc.want, got, "%+v", tc.fields)
	}
}

func TestTotalSecondsFormula(t *testing.T) {
	for s := 0; s < 70; s += 7 {
		for m := 0; m < 70; m += 11 {
			for h := 0; h < 30; h += 5 {
				fields := Fields{strconv.Itoa(s), strconv.Itoa(m), strconv.Itoa(h)}
				got, err := fields.TotalSeconds()
				require.NoError(t, err)
				assert.Equal(t, s+60*m+3600*h, got)
			}
		}
	}
}

func TestInvalidDurationNamesField(t *testing.T) {
	cases := []struct {
		fields Fields
		field  string
	}{
		{Fields{"abc", "0", "0"}, "seconds"},
		{Fields{"0", "-1", "0"}, "minutes"},
		{Fields{"0", "0", "1.5"}, "hours"},
	}
	for _, tc := range cases {
		_, err := tc.fields.TotalSeconds()
		var invalid *InvalidDurationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, tc.field, invalid.Field)
		assert.Contains(t, err.Error(), tc.field)
	}
}

func TestTotalSecondsBoundedByDuration(t *testing.T) {
	maxSeconds := strconv.FormatInt(MaxTotalSeconds, 10)
	tooMany := strconv.FormatInt(MaxTotalSeconds+1, 10)
	cases := []struct {
		fields Fields
		field  string
	}{
		{Fields{"0", "0", "3000000"}, "hours"},
		{Fields{"0", "0", "999999999"}, "hours"},
		{Fields{"0", "999999999999", "0"}, "minutes"},
		{Fields{tooMany, "0", "0"}, "seconds"},
		{Fields{maxSeconds, "1", "0"}, "minutes"},
		{Fields{"0", "50000", "2562047"}, "hours"},
	}
	for _, tc := range cases {
		_, err := NewRequest(tc.fields, KindShutdown)
		var invalid *InvalidDurationError
		require.ErrorAs(t, err, &invalid, "%+v", tc.fields)
		assert.Equal(t, tc.field, invalid.Field, "%+v", tc.fields)
	}

	request, err := NewRequest(Fields{maxSeconds, "0", "0"}, KindShutdown)
	require.NoError(t, err)
	assert.Positive(t, request.Delay())
	assert.Equal(t, time.Duration(MaxTotalSeconds)*time.Second, request.Delay())
}

func TestNewRequest(t *testing.T) {
	request, err := NewRequest(Fields{"5", "0", "0"}, KindSleep)
	require.NoError(t, err)
	assert.Equal(t, Request{Kind: KindSleep, TotalSeconds: 5}, request)
	assert.Equal(t, 5*time.Second, request.Delay())

	_, err = NewRequest(Fields{"5", "0", "0"}, KindNone)
	assert.ErrorIs(t, err, ErrNoActionSelected)

	_, err = NewRequest(Fields{"x", "0", "0"}, KindNone)
	var invalid *InvalidDurationError
	assert.ErrorAs(t, err, &invalid)
}

func TestKindLabels(t *testing.T) {
	for _, kind := range Kinds {
		assert.Equal(t, kind, KindFromLabel(kind.Label()))
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	assert.Equal(t, KindNone, KindFromLabel(""))
	assert.False(t, KindNone.Valid())

	_, err := ParseKind("hibernate")
	assert.Error(t, err)
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "00:00:05", FormatRemaining(5))
	assert.Equal(t, "01:01:01", FormatRemaining(3661))
	assert.Equal(t, "00:00:00", FormatRemaining(-1))
}
