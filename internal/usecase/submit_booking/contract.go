package submit_booking

import (
	"context"

	"github.com/parkshare/PSM-BookingService/internal/domain"
)

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
