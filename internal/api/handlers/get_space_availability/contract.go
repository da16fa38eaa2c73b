package get_space_availability

import (
	"context"

	"github.com/parkshare/PSM-BookingService/internal/service/spaces/models"
)

type SpaceService interface {
	GetAvailability(ctx context.Context, spaceID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
