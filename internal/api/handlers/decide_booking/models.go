package decide_booking

import (
	"time"

	decideBooking "github.com/parkshare/PSM-BookingService/internal/usecase/decide_booking"
)

// DecideBookingRequest HTTP запрос с решением владельца
type DecideBookingRequest struct {
	Decision string `json:"decision"` // approve | reject
}

// DecideBookingResponse HTTP ответ с бронированием после решения
type DecideBookingResponse struct {
	ID         int64     `json:"id"`
	SpaceID    int64     `json:"spaceId"`
	SeekerID   int64     `json:"seekerId"`
	OwnerID    int64     `json:"ownerId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *decideBooking.Response) *DecideBookingResponse {
	return &DecideBookingResponse{
		ID:         resp.ID,
		SpaceID:    resp.SpaceID,
		SeekerID:   resp.SeekerID,
		OwnerID:    resp.OwnerID,
		StartTime:  resp.Start,
		EndTime:    resp.End,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt,
		UpdatedAt:  resp.UpdatedAt,
	}
}
