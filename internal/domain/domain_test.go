package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-booking/pkg/timerange"
)

func TestCalculatePrice(t *testing.T) {
	assert.Equal(t, 100000.0, CalculatePrice(2, 50000))
	assert.Equal(t, 20000.0, CalculatePrice(0.5, 40000))
	assert.Equal(t, 33.33, CalculatePrice(1.0/3.0, 100))
}

func TestSchedule_DurationHours(t *testing.T) {
	s := Schedule{StartTime: "09:00", EndTime: "11:00"}
	hours, err := s.DurationHours()
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)

	bad := Schedule{StartTime: "25:99", EndTime: "11:00"}
	_, err = bad.DurationHours()
	assert.ErrorIs(t, err, timerange.ErrInvalidTimeFormat)
}

func TestSchedule_IsPast(t *testing.T) {
	s := Schedule{Date: "2026-10-17"}
	assert.True(t, s.IsPast("2026-10-18"))
	assert.False(t, s.IsPast("2026-10-17"))
}

func TestStatuses(t *testing.T) {
	assert.True(t, CourtStatusActive.IsValid())
	assert.False(t, CourtStatus("closed").IsValid())
	assert.True(t, ScheduleStatusBooked.IsValid())
	assert.False(t, ScheduleStatus("pending").IsValid())

	c := Court{Status: CourtStatusInactive}
	assert.False(t, c.IsActive())
}

func TestBookingUpdate_IsEmpty(t *testing.T) {
	assert.True(t, BookingUpdate{}.IsEmpty())
	name := "x"
	assert.False(t, BookingUpdate{CustomerName: &name}.IsEmpty())
}
