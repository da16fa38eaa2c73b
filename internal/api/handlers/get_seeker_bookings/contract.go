package get_seeker_bookings

import (
	"context"

	"github.com/parkshare/PSM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetSeekerBookings(ctx context.Context, req *models.GetSeekerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
