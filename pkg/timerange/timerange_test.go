package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "hours and minutes", value: "09:30", want: 9*time.Hour + 30*time.Minute},
		{name: "with seconds", value: "09:30:15", want: 9*time.Hour + 30*time.Minute + 15*time.Second},
		{name: "midnight", value: "00:00", want: 0},
		{name: "last minute", value: "23:59", want: 23*time.Hour + 59*time.Minute},
		{name: "hour out of range", value: "25:00", wantErr: true},
		{name: "minutes out of range", value: "25:99", wantErr: true},
		{name: "24 is not a time of day", value: "24:00", wantErr: true},
		{name: "single digit hour", value: "9:00", wantErr: true},
		{name: "garbage", value: "nine", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "too many parts", value: "10:00:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("08:00:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", got)

	got, err = Normalize("08:00:30")
	require.NoError(t, err)
	assert.Equal(t, "08:00:30", got)
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{name: "two hours", start: "09:00", end: "11:00", want: 2},
		{name: "half hour", start: "09:00", end: "09:30", want: 0.5},
		{name: "mixed formats", start: "09:00:00", end: "10:30", want: 1.5},
		{name: "overnight", start: "22:00", end: "01:00", want: 3},
		{name: "equal bounds wrap to full day", start: "10:00", end: "10:00", want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationHours(tt.start, tt.end)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDurationHours_MalformedInputIsNotDefaulted(t *testing.T) {
	got, err := DurationHours("25:99", "11:00")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
	assert.Zero(t, got)

	_, err = DurationHours("09:00", "")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

// Duration and slot validity disagree on ranges where end <= start:
// the duration wraps over midnight while slot validation rejects the range.
func TestOvernightPolicyDiffersBetweenDurationAndSlotValidity(t *testing.T) {
	hours, err := DurationHours("22:00", "01:00")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, hours, 1e-9)

	err = ValidateSlot("22:00", "01:00")
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestValidateSlot(t *testing.T) {
	assert.NoError(t, ValidateSlot("08:00", "10:00"))
	assert.ErrorIs(t, ValidateSlot("10:00", "10:00"), ErrInvalidRange)
	assert.ErrorIs(t, ValidateSlot("10:00", "08:00"), ErrInvalidRange)
	assert.ErrorIs(t, ValidateSlot("10:00", "8"), ErrInvalidTimeFormat)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd           string
		bStart, bEnd           string
		want                   bool
	}{
		{name: "inside", aStart: "09:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "partial", aStart: "09:00", aEnd: "10:30", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "touching end", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "touching start", aStart: "11:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "disjoint", aStart: "08:00", aEnd: "09:00", bStart: "14:00", bEnd: "16:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
