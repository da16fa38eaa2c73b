package space

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkshare/PSM-BookingService/internal/domain"
	"github.com/parkshare/PSM-BookingService/pkg/dbmetrics"
	"github.com/parkshare/PSM-BookingService/pkg/psqlbuilder"
)

// spaceColumns колонки таблицы parking_spaces в порядке сканирования
var spaceColumns = []string{
	"id",
	"owner_id",
	"title",
	"address",
	"is_available",
	"date_from",
	"date_to",
	"time_from",
	"time_to",
	"price_per_hour",
	"price_per_day",
	"capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с парковочными площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, space *domain.ParkingSpace) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_spaces").
		Columns(
			"owner_id",
			"title",
			"address",
			"is_available",
			"date_from",
			"date_to",
			"time_from",
			"time_to",
			"price_per_hour",
			"price_per_day",
			"capacity",
		).
		Values(
			space.OwnerID,
			space.Title,
			space.Address,
			space.IsAvailable,
			space.DateFrom,
			space.DateTo,
			space.TimeFrom,
			space.TimeTo,
			space.PricePerHour,
			space.PricePerDay,
			space.Capacity,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("parking_spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := r.scanSpace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// ListAvailable получает опубликованные площадки (is_available = true)
// Фильтрация по занятым слотам выполняется на уровне сервиса
func (r *Repository) ListAvailable(ctx context.Context) ([]*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("parking_spaces").
		Where(squirrel.Eq{"is_available": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpaces(rows)
}

// ListByOwnerID получает площадки владельца
func (r *Repository) ListByOwnerID(ctx context.Context, ownerID int64) ([]*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("parking_spaces").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpaces(rows)
}

// UpdateAvailability обновляет окно доступности, тарифы и вместимость площадки
// Бизнес-валидация значений выполняется на уровне сервиса
func (r *Repository) UpdateAvailability(ctx context.Context, space *domain.ParkingSpace) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spaces").
		Set("is_available", space.IsAvailable).
		Set("date_from", space.DateFrom).
		Set("date_to", space.DateTo).
		Set("time_from", space.TimeFrom).
		Set("time_to", space.TimeTo).
		Set("price_per_hour", space.PricePerHour).
		Set("price_per_day", space.PricePerDay).
		Set("capacity", space.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanSpace сканирует одну строку в модель площадки
func (r *Repository) scanSpace(row scanner) (*domain.ParkingSpace, error) {
	var space domain.ParkingSpace
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.OwnerID,
		&space.Title,
		&space.Address,
		&space.IsAvailable,
		&space.DateFrom,
		&space.DateTo,
		&space.TimeFrom,
		&space.TimeTo,
		&space.PricePerHour,
		&space.PricePerDay,
		&space.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// scanSpaces сканирует результаты запроса в слайс площадок
func (r *Repository) scanSpaces(rows *sql.Rows) ([]*domain.ParkingSpace, error) {
	spaces := make([]*domain.ParkingSpace, 0)

	for rows.Next() {
		space, err := r.scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSpaces - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpaces - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}
