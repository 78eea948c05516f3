package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/court-booking/internal/domain"
	"github.com/m04kA/court-booking/pkg/dberrors"
	"github.com/m04kA/court-booking/pkg/dbmetrics"
	"github.com/m04kA/court-booking/pkg/sqlbuilder"
	"github.com/m04kA/court-booking/pkg/types"
)

var columns = []string{
	"id",
	"name",
	"description",
	"price_per_hour",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с кортами
type Repository struct {
	db DBExecutor
	qb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{db: db, qb: sqlbuilder.New(dialect)}
}

// Create создает корт
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Insert("courts").
		Columns("name", "description", "price_per_hour", "status", "created_at", "updated_at").
		Values(
			court.Name,
			court.Description,
			court.PricePerHour,
			court.Status,
			types.Timestamp{Time: now},
			types.Timestamp{Time: now},
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&court.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	court.CreatedAt = now
	court.UpdatedAt = now

	return court, nil
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(columns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// List возвращает корты по имени
func (r *Repository) List(ctx context.Context, filter domain.CourtFilter) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.qb.Select(columns...).
		From("courts").
		OrderBy("name ASC", "id ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan court: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return courts, nil
}

// Update обновляет все изменяемые поля корта
func (r *Repository) Update(ctx context.Context, court *domain.Court) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Update("courts").
		Set("name", court.Name).
		Set("description", court.Description).
		Set("price_per_hour", court.PricePerHour).
		Set("status", court.Status).
		Set("updated_at", types.Timestamp{Time: now}).
		Where(squirrel.Eq{"id": court.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	court.UpdatedAt = now
	return nil
}

// Delete удаляет корт. Корт со слотами удалить нельзя.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := r.qb.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"court_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build count query: %v", ErrBuildQuery, err)
	}

	var schedules int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&schedules); err != nil {
		return fmt.Errorf("%w: Delete - count schedules: %v", ErrScanRow, err)
	}
	if schedules > 0 {
		return ErrCourtInUse
	}

	query, args, err := r.qb.Delete("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		// слот мог появиться между проверкой и удалением
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCourtInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourt(row rowScanner) (*domain.Court, error) {
	var court domain.Court
	var createdAt, updatedAt types.Timestamp

	err := row.Scan(
		&court.ID,
		&court.Name,
		&court.Description,
		&court.PricePerHour,
		&court.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}
