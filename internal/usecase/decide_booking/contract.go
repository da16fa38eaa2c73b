package decide_booking

import (
	"context"

	"github.com/parkshare/PSM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error
}

// SlotRepository интерфейс журнала занятых слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.BookingSlot) (*domain.BookingSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
