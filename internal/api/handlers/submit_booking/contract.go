package submit_booking

import (
	"context"

	submitBooking "github.com/parkshare/PSM-BookingService/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
