package booking

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

// joinedColumns бронирование со слотом и кортом
var joinedColumns = []string{
	"b.id",
	"b.schedule_id",
	"b.customer_name",
	"b.customer_phone",
	"b.customer_email",
	"b.total_price",
	"b.notes",
	"b.created_at",
	"b.updated_at",
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

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
	qb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{db: db, qb: sqlbuilder.New(dialect)}
}

// Create создает бронирование.
// Если в контексте передана активная транзакция, использует её.
// UNIQUE(schedule_id) гарантирует не более одного бронирования на слот.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Insert("bookings").
		Columns(
			"schedule_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"total_price",
			"notes",
			"created_at",
			"updated_at",
		).
		Values(
			booking.ScheduleID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.TotalPrice,
			booking.Notes,
			types.Timestamp{Time: now},
			types.Timestamp{Time: now},
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return nil, ErrSlotNotAvailable
		case dberrors.IsForeignKeyViolation(err):
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = now
	booking.UpdatedAt = now

	return booking, nil
}

// GetByID получает бронирование по ID вместе со слотом и кортом
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectJoined().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanJoined(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования со слотами и кортами.
// Фильтры применяются к слоту, порядок задается filter.Order.
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectJoined()

	switch filter.Order {
	case domain.OrderByRecent:
		selectBuilder = selectBuilder.OrderBy("b.created_at DESC", "b.id DESC")
	default:
		selectBuilder = selectBuilder.OrderBy("s.date DESC", "s.start_time ASC", "b.id ASC")
	}

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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// ExistsBySchedule проверяет, есть ли бронирование на слот
func (r *Repository) ExistsBySchedule(ctx context.Context, scheduleID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsBySchedule - build select query: %v", ErrBuildQuery, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: ExistsBySchedule - scan count: %v", ErrScanRow, err)
	}

	return n > 0, nil
}

// Update обновляет данные клиента и заметки.
// schedule_id и total_price не меняются никогда.
func (r *Repository) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := r.qb.Update("bookings").
		Set("updated_at", types.Timestamp{Time: time.Now().UTC().Truncate(time.Microsecond)}).
		Where(squirrel.Eq{"id": id})

	if update.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *update.CustomerName)
	}
	if update.CustomerPhone != nil {
		updateBuilder = updateBuilder.Set("customer_phone", *update.CustomerPhone)
	}
	if update.CustomerEmail != nil {
		updateBuilder = updateBuilder.Set("customer_email", nullIfEmpty(*update.CustomerEmail))
	}
	if update.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", nullIfEmpty(*update.Notes))
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected != 1 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) selectJoined() squirrel.SelectBuilder {
	return r.qb.Select(joinedColumns...).
		From("bookings b").
		Join("schedules s ON s.id = b.schedule_id").
		Join("courts c ON c.id = s.court_id")
}

// nullIfEmpty пустая строка очищает необязательное поле
func nullIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJoined(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var schedule domain.Schedule
	var court domain.Court
	var bCreatedAt, bUpdatedAt, sCreatedAt, sUpdatedAt, cCreatedAt, cUpdatedAt types.Timestamp

	err := row.Scan(
		&booking.ID,
		&booking.ScheduleID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.TotalPrice,
		&booking.Notes,
		&bCreatedAt,
		&bUpdatedAt,
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

	booking.CreatedAt = bCreatedAt.Time
	booking.UpdatedAt = bUpdatedAt.Time
	schedule.CreatedAt = sCreatedAt.Time
	schedule.UpdatedAt = sUpdatedAt.Time
	court.CreatedAt = cCreatedAt.Time
	court.UpdatedAt = cUpdatedAt.Time

	schedule.Court = &court
	booking.Schedule = &schedule

	return &booking, nil
}
