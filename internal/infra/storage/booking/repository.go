package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkshare/PSM-BookingService/internal/domain"
	"github.com/parkshare/PSM-BookingService/pkg/dbmetrics"
	"github.com/parkshare/PSM-BookingService/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"space_id",
	"seeker_id",
	"owner_id",
	"start_time",
	"end_time",
	"total_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// total_price записывается один раз и больше никогда не обновляется
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"space_id",
			"seeker_id",
			"owner_id",
			"start_time",
			"end_time",
			"total_price",
			"status",
		).
		Values(
			booking.SpaceID,
			booking.SeekerID,
			booking.OwnerID,
			booking.StartTime,
			booking.EndTime,
			booking.TotalPrice,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется через FOR UPDATE:
// это сериализует конкурирующие решения владельца по одному бронированию
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetBySeekerID получает список бронирований арендатора
// Опционально фильтрует по статусу
func (r *Repository) GetBySeekerID(ctx context.Context, seekerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"seeker_id": seekerID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeekerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeekerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByOwnerWithFilter получает бронирования владельца с фильтрацией
// Поддерживает фильтрацию по площадке и статусу
//
// Примеры использования:
//
//  1. Запросы, ожидающие решения (вкладка владельца "pending"):
//     status := domain.StatusPending
//     filter := domain.OwnerBookingsFilter{OwnerID: 42, Status: &status}
//
//  2. Подтверждённые бронирования одной площадки:
//     status := domain.StatusConfirmed
//     filter := domain.OwnerBookingsFilter{OwnerID: 42, SpaceID: &spaceID, Status: &status}
func (r *Repository) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"owner_id": filter.OwnerID}).
		OrderBy("start_time ASC")

	if filter.SpaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *filter.SpaceID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatusFrom условно обновляет статус бронирования (compare-and-set)
// Обновление проходит только если текущий статус равен from:
// из двух конкурирующих решений по одному бронированию выигрывает ровно одно
// Возвращает ErrStatusConflict, если строка есть, но статус уже не from,
// и ErrBookingNotFound, если строки нет вовсе
func (r *Repository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "нет строки" и "строка есть, но статус уже другой"
		if _, err := r.GetByID(ctx, id); err != nil {
			return ErrBookingNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в модель бронирования
func (r *Repository) scanBooking(row scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SpaceID,
		&booking.SeekerID,
		&booking.OwnerID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalPrice,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
