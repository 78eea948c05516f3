package schedule

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

// joinedColumns слот вместе с кортом
var joinedColumns = []string{
	"s.id",
	"s.court_id",
	"s.date",
	"s.start_time",
	"s.end_time",
	"s.status",
	"s.created_at",
	"s.updated_at",
	"c.id",
	"c.name",
	"c.description",
	"c.price_per_hour",
	"c.status",
	"c.created_at",
	"c.updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
	qb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{db: db, qb: sqlbuilder.New(dialect)}
}

// Create создает слот
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Insert("schedules").
		Columns("court_id", "date", "start_time", "end_time", "status", "created_at", "updated_at").
		Values(
			schedule.CourtID,
			schedule.Date,
			schedule.StartTime,
			schedule.EndTime,
			schedule.Status,
			types.Timestamp{Time: now},
			types.Timestamp{Time: now},
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return nil, ErrScheduleExists
		case dberrors.IsForeignKeyViolation(err):
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	return schedule, nil
}

// GetByID получает слот по ID вместе с кортом
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectJoined().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanJoined(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// List возвращает слоты с кортами, по дате и времени начала
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectJoined().
		OrderBy("s.date ASC", "s.start_time ASC", "s.id ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.date": *filter.Date})
	}
	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.court_id": *filter.CourtID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": *filter.Status})
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

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		schedule, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan schedule: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return schedules, nil
}

// Exists проверяет, есть ли у корта слот с такой датой и временем начала
func (r *Repository) Exists(ctx context.Context, courtID int64, date types.Date, startTime types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"court_id": courtID, "date": date, "start_time": startTime}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: Exists - scan count: %v", ErrScanRow, err)
	}

	return n > 0, nil
}

// Update обновляет корт, дату, время и статус слота.
// Запись условная: слот должен быть в статусе expected и без бронирования, иначе ErrScheduleBooked.
func (r *Repository) Update(ctx context.Context, schedule *domain.Schedule, expected domain.ScheduleStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Update("schedules").
		Set("court_id", schedule.CourtID).
		Set("date", schedule.Date).
		Set("start_time", schedule.StartTime).
		Set("end_time", schedule.EndTime).
		Set("status", schedule.Status).
		Set("updated_at", types.Timestamp{Time: now}).
		Where(squirrel.Eq{"id": schedule.ID, "status": expected}).
		Where("NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.schedule_id = schedules.id)").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return ErrScheduleExists
		case dberrors.IsForeignKeyViolation(err):
			return ErrCourtNotFound
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		exists, err := r.existsByID(ctx, executor, schedule.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrScheduleNotFound
		}
		return ErrScheduleBooked
	}

	schedule.UpdatedAt = now
	return nil
}

func (r *Repository) existsByID(ctx context.Context, executor DBExecutor, id int64) (bool, error) {
	query, args, err := r.qb.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: existsByID - build select query: %v", ErrBuildQuery, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: existsByID - scan count: %v", ErrScanRow, err)
	}
	return n > 0, nil
}

// Reserve переводит слот в booked, только если он сейчас available.
// Условное обновление: из конкурирующих запросов ровно один получит затронутую строку.
func (r *Repository) Reserve(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Update("schedules").
		Set("status", domain.ScheduleStatusBooked).
		Set("updated_at", types.Timestamp{Time: time.Now().UTC().Truncate(time.Microsecond)}).
		Where(squirrel.Eq{"id": id, "status": domain.ScheduleStatusAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected != 1 {
		return ErrSlotNotAvailable
	}

	return nil
}

// Release возвращает слот в available
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Update("schedules").
		Set("status", domain.ScheduleStatusAvailable).
		Set("updated_at", types.Timestamp{Time: time.Now().UTC().Truncate(time.Microsecond)}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected != 1 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete удаляет слот. Слот с бронированием удалить нельзя (FK RESTRICT).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrScheduleBooked
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *Repository) selectJoined() squirrel.SelectBuilder {
	return r.qb.Select(joinedColumns...).
		From("schedules s").
		Join("courts c ON c.id = s.court_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJoined(row rowScanner) (*domain.Schedule, error) {
	var schedule domain.Schedule
	var court domain.Court
	var sCreatedAt, sUpdatedAt, cCreatedAt, cUpdatedAt types.Timestamp

	err := row.Scan(
		&schedule.ID,
		&schedule.CourtID,
		&schedule.Date,
		&schedule.StartTime,
		&schedule.EndTime,
		&schedule.Status,
		&sCreatedAt,
		&sUpdatedAt,
		&court.ID,
		&court.Name,
		&court.Description,
		&court.PricePerHour,
		&court.Status,
		&cCreatedAt,
		&cUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.CreatedAt = sCreatedAt.Time
	schedule.UpdatedAt = sUpdatedAt.Time
	court.CreatedAt = cCreatedAt.Time
	court.UpdatedAt = cUpdatedAt.Time
	schedule.Court = &court

	return &schedule, nil
}
