package spaces

import (
	"context"

	"github.com/parkshare/PSM-BookingService/internal/domain"
)

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
	ListAvailable(ctx context.Context) ([]*domain.ParkingSpace, error)
	UpdateAvailability(ctx context.Context, space *domain.ParkingSpace) error
}

// SlotRepository интерфейс журнала занятых слотов
type SlotRepository interface {
	ExistsBySpace(ctx context.Context, spaceID int64) (bool, error)
	SpaceIDsWithSlots(ctx context.Context) (map[int64]struct{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
