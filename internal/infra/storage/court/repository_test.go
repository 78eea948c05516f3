package court

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-booking/internal/domain"
	"github.com/m04kA/court-booking/internal/infra/storage/storagetest"
	"github.com/m04kA/court-booking/pkg/ptr"
)

func TestRepository_CRUD(t *testing.T) {
	db := storagetest.New(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Court{
		Name:         "Lapangan A",
		Description:  ptr.Of("Lapangan premium"),
		PricePerHour: 50000,
		Status:       domain.CourtStatusActive,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lapangan A", got.Name)
	assert.Equal(t, "Lapangan premium", ptr.Deref(got.Description))
	assert.Equal(t, 50000.0, got.PricePerHour)
	assert.True(t, got.IsActive())

	got.PricePerHour = 55000.5
	got.Status = domain.CourtStatusInactive
	got.Description = nil
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 55000.5, updated.PricePerHour)
	assert.Equal(t, domain.CourtStatusInactive, updated.Status)
	assert.Nil(t, updated.Description)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrCourtNotFound)
	assert.ErrorIs(t, repo.Update(ctx, updated), ErrCourtNotFound)
}

func TestRepository_ListByNameAndStatus(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)
	ctx := context.Background()

	c := fx.Court("Lapangan C", 30000)
	a := fx.Court("Lapangan A", 50000)
	b := fx.CourtWithStatus("Lapangan B", 40000, "inactive")

	all, err := repo.List(ctx, domain.CourtFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{a, b, c}, []int64{all[0].ID, all[1].ID, all[2].ID})

	active := domain.CourtStatusActive
	onlyActive, err := repo.List(ctx, domain.CourtFilter{Status: &active})
	require.NoError(t, err)
	require.Len(t, onlyActive, 2)
	assert.Equal(t, a, onlyActive[0].ID)
	assert.Equal(t, c, onlyActive[1].ID)
}

func TestRepository_DeleteRestrictedBySchedules(t *testing.T) {
	db := storagetest.New(t)
	fx := db.Fixtures(t)
	repo := NewRepository(db, db.Dialect)

	courtID := fx.Court("A", 50000)
	fx.Schedule(courtID, "2026-10-20", "08:00", "10:00")

	assert.ErrorIs(t, repo.Delete(context.Background(), courtID), ErrCourtInUse)
	assert.Equal(t, 1, fx.Count("courts"))
}
