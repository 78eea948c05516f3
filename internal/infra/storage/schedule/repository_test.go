package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-booking/internal/domain"
	"github.com/m04kA/court-booking/internal/infra/storage/storagetest"
	"github.com/m04kA/court-booking/pkg/types"
)

func TestRepository_CreateAndGet(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	courtID := fx.Court("Lapangan A", 50000)

	created, err := repo.Create(ctx, &domain.Schedule{
		CourtID:   courtID,
		Date:      "2026-10-20",
		StartTime: "08:00",
		EndTime:   "10:00",
		Status:    domain.ScheduleStatusAvailable,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, types.Date("2026-10-20"), got.Date)
	assert.Equal(t, types.TimeString("10:00"), got.EndTime)
	assert.True(t, got.IsAvailable())
	require.NotNil(t, got.Court)
	assert.Equal(t, 50000.0, got.Court.PricePerHour)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestRepository_CreateConstraints(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	courtID := fx.Court("A", 50000)
	fx.Schedule(courtID, "2026-10-20", "08:00", "10:00")

	_, err := repo.Create(ctx, &domain.Schedule{CourtID: courtID, Date: "2026-10-20", StartTime: "08:00", EndTime: "09:00", Status: domain.ScheduleStatusAvailable})
	assert.ErrorIs(t, err, ErrScheduleExists)

	_, err = repo.Create(ctx, &domain.Schedule{CourtID: 404, Date: "2026-10-20", StartTime: "08:00", EndTime: "09:00", Status: domain.ScheduleStatusAvailable})
	assert.ErrorIs(t, err, ErrCourtNotFound)

	exists, err := repo.Exists(ctx, courtID, "2026-10-20", "08:00")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, courtID, "2026-10-20", "10:00")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_ListOrderAndFilters(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	courtA := fx.Court("A", 50000)
	courtB := fx.Court("B", 40000)

	s1 := fx.Schedule(courtA, "2026-10-21", "08:00", "10:00")
	s2 := fx.Schedule(courtA, "2026-10-20", "14:00", "16:00")
	s3 := fx.ScheduleWithStatus(courtB, "2026-10-20", "08:00", "10:00", "booked")

	all, err := repo.List(ctx, domain.ScheduleFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{s3, s2, s1}, ids(all))

	available := domain.ScheduleStatusAvailable
	free, err := repo.List(ctx, domain.ScheduleFilter{Status: &available})
	require.NoError(t, err)
	assert.Equal(t, []int64{s2, s1}, ids(free))

	date := types.Date("2026-10-20")
	byDate, err := repo.List(ctx, domain.ScheduleFilter{Date: &date, CourtID: &courtA})
	require.NoError(t, err)
	assert.Equal(t, []int64{s2}, ids(byDate))
}

func TestRepository_ReserveIsConditional(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	id := fx.Schedule(fx.Court("A", 50000), "2026-10-20", "08:00", "10:00")

	require.NoError(t, repo.Reserve(ctx, id))
	assert.Equal(t, "booked", fx.ScheduleStatus(id))

	assert.ErrorIs(t, repo.Reserve(ctx, id), ErrSlotNotAvailable)
	assert.ErrorIs(t, repo.Reserve(ctx, 999), ErrSlotNotAvailable)

	require.NoError(t, repo.Release(ctx, id))
	assert.Equal(t, "available", fx.ScheduleStatus(id))

	assert.ErrorIs(t, repo.Release(ctx, 999), ErrScheduleNotFound)
}

func TestRepository_Update(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	courtID := fx.Court("A", 50000)
	id := fx.Schedule(courtID, "2026-10-20", "08:00", "10:00")
	fx.Schedule(courtID, "2026-10-20", "10:00", "12:00")

	s, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	s.StartTime = "07:00"
	s.Status = domain.ScheduleStatusBooked
	require.NoError(t, repo.Update(ctx, s, domain.ScheduleStatusAvailable))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("07:00"), got.StartTime)
	assert.Equal(t, domain.ScheduleStatusBooked, got.Status)

	s.StartTime = "10:00"
	assert.ErrorIs(t, repo.Update(ctx, s, domain.ScheduleStatusBooked), ErrScheduleExists)

	s.ID = 999
	s.StartTime = "18:00"
	assert.ErrorIs(t, repo.Update(ctx, s, domain.ScheduleStatusBooked), ErrScheduleNotFound)
}

func TestRepository_UpdateIsConditional(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	courtID := fx.Court("A", 50000)

	t.Run("status changed since read", func(t *testing.T) {
		id := fx.Schedule(courtID, "2026-10-20", "08:00", "10:00")
		stale, err := repo.GetByID(ctx, id)
		require.NoError(t, err)

		require.NoError(t, repo.Reserve(ctx, id))

		stale.Date = "2026-10-27"
		assert.ErrorIs(t, repo.Update(ctx, stale, domain.ScheduleStatusAvailable), ErrScheduleBooked)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.ScheduleStatusBooked, got.Status)
		assert.Equal(t, types.Date("2026-10-20"), got.Date)
	})

	t.Run("booking exists", func(t *testing.T) {
		id := fx.Schedule(courtID, "2026-10-21", "08:00", "10:00")
		fx.Booking(id, "Budi", 100000, time.Now())

		s, err := repo.GetByID(ctx, id)
		require.NoError(t, err)

		s.Status = domain.ScheduleStatusAvailable
		assert.ErrorIs(t, repo.Update(ctx, s, domain.ScheduleStatusBooked), ErrScheduleBooked)
		assert.Equal(t, "booked", fx.ScheduleStatus(id))
	})
}

func TestRepository_DeleteRestrictedByBooking(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	courtID := fx.Court("A", 50000)
	booked := fx.Schedule(courtID, "2026-10-20", "08:00", "10:00")
	free := fx.Schedule(courtID, "2026-10-20", "10:00", "12:00")
	fx.Booking(booked, "Budi", 100000, time.Now())

	assert.ErrorIs(t, repo.Delete(ctx, booked), ErrScheduleBooked)
	require.NoError(t, repo.Delete(ctx, free))
	assert.ErrorIs(t, repo.Delete(ctx, free), ErrScheduleNotFound)
}

func ids(schedules []*domain.Schedule) []int64 {
	result := make([]int64, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, s.ID)
	}
	return result
}
