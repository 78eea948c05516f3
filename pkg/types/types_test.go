package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2026-10-18"), d)

	require.NoError(t, d.Scan("2026-10-19"))
	assert.Equal(t, Date("2026-10-19"), d)

	require.NoError(t, d.Scan([]byte("2026-10-20T00:00:00Z")))
	assert.Equal(t, Date("2026-10-20"), d)

	assert.Error(t, d.Scan(42))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", d.String())

	_, err = ParseDate("18.10.2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestDate_AddDaysAndBefore(t *testing.T) {
	d := Date("2026-12-31")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, Date("2027-01-01"), next)
	assert.True(t, d.Before(next))
	assert.False(t, next.Before(d))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30:00"), ts)

	// malformed values are kept as is
	require.NoError(t, ts.Scan("25:99"))
	assert.Equal(t, TimeString("25:99"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:00:00"), ts)
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)

	var ts Timestamp
	require.NoError(t, ts.Scan(want))
	assert.True(t, want.Equal(ts.Time))

	require.NoError(t, ts.Scan("2026-10-18 12:30:00+00:00"))
	assert.True(t, want.Equal(ts.Time))

	require.NoError(t, ts.Scan([]byte("2026-10-18T12:30:00Z")))
	assert.True(t, want.Equal(ts.Time))

	assert.Error(t, ts.Scan("yesterday"))
}
