package bookings

import (
	"context"
	"time"

	"github.com/parkshare/PSM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBySeekerID(ctx context.Context, seekerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Текущее время нужно для проекции статуса completed
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
