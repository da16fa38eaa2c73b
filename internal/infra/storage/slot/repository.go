package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/parkshare/PSM-BookingService/internal/domain"
	"github.com/parkshare/PSM-BookingService/pkg/dbmetrics"
	"github.com/parkshare/PSM-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = pq.ErrorCode("23505")

// Repository репозиторий журнала занятых слотов
// Таблица booking_slots append-only: слоты создаются при подтверждении
// бронирования и никогда не изменяются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create фиксирует слот подтверждённого бронирования
// Уникальный индекс по booking_id гарантирует не больше одного слота
// на бронирование даже при гонке
func (r *Repository) Create(ctx context.Context, slot *domain.BookingSlot) (*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_slots").
		Columns(
			"space_id",
			"booking_id",
			"start_time",
			"end_time",
		).
		Values(
			slot.SpaceID,
			slot.BookingID,
			slot.StartTime,
			slot.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// ExistsBySpace возвращает true, если у площадки есть хотя бы один слот
// Один зафиксированный слот снимает площадку с выдачи целиком,
// независимо от дат и вместимости
func (r *Repository) ExistsBySpace(ctx context.Context, spaceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("booking_slots").
		Where(squirrel.Eq{"space_id": spaceID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsBySpace - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsBySpace - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListBySpace получает слоты площадки
func (r *Repository) ListBySpace(ctx context.Context, spaceID int64) ([]*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"space_id",
		"booking_id",
		"start_time",
		"end_time",
		"created_at",
	).
		From("booking_slots").
		Where(squirrel.Eq{"space_id": spaceID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpace - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpace - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BookingSlot, 0)
	for rows.Next() {
		var slot domain.BookingSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.SpaceID,
			&slot.BookingID,
			&slot.StartTime,
			&slot.EndTime,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySpace - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySpace - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// SpaceIDsWithSlots получает ID всех площадок, у которых есть слоты
// Используется выдачей для исключения занятых площадок одним запросом
func (r *Repository) SpaceIDsWithSlots(ctx context.Context) (map[int64]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT space_id").
		From("booking_slots").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SpaceIDsWithSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SpaceIDsWithSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaceIDs := make(map[int64]struct{})
	for rows.Next() {
		var spaceID int64
		if err := rows.Scan(&spaceID); err != nil {
			return nil, fmt.Errorf("%w: SpaceIDsWithSlots - scan space_id: %v", ErrScanRow, err)
		}
		spaceIDs[spaceID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SpaceIDsWithSlots - rows error: %v", ErrScanRow, err)
	}

	return spaceIDs, nil
}
