package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/court-booking/pkg/dbmetrics"
)

func setupDB(t *testing.T) *dbmetrics.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)

	return dbmetrics.Wrap(db, nil)
}

func countItems(t *testing.T, db dbmetrics.DBExecutor) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestDo_Commit(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestDo_RollbackOnError(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
		require.NoError(t, err)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, db))
}

func TestDo_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = tm.Do(context.Background(), func(ctx context.Context) error {
			_, _ = dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`)
			panic("unexpected")
		})
	})

	assert.Equal(t, 0, countItems(t, db))
}

func TestDo_NestedCallReusesTransaction(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.Do(context.Background(), func(outer context.Context) error {
		outerTx, _ := dbmetrics.TxFromContext(outer)
		return tm.Do(outer, func(inner context.Context) error {
			innerTx, _ := dbmetrics.TxFromContext(inner)
			assert.Same(t, outerTx, innerTx)
			return nil
		})
	})

	require.NoError(t, err)
}
