package submit_booking

import (
	"time"

	submitBooking "github.com/parkshare/PSM-BookingService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP запрос на бронирование площадки
type SubmitBookingRequest struct {
	SpaceID   int64  `json:"spaceId"`
	StartTime string `json:"startTime"` // RFC 3339, например "2025-06-01T08:00:00Z"
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// seekerID берётся из контекста аутентификации, а не из тела
func (r *SubmitBookingRequest) ToUseCaseRequest(seekerID int64) (*submitBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		SpaceID:  r.SpaceID,
		SeekerID: seekerID,
		Start:    start,
		End:      end,
	}, nil
}

// SubmitBookingResponse HTTP ответ с созданным запросом на бронирование
type SubmitBookingResponse struct {
	ID         int64     `json:"id"`
	SpaceID    int64     `json:"spaceId"`
	SeekerID   int64     `json:"seekerId"`
	OwnerID    int64     `json:"ownerId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`

	SpaceTitle   string `json:"spaceTitle"`
	SpaceAddress string `json:"spaceAddress"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		ID:           resp.ID,
		SpaceID:      resp.SpaceID,
		SeekerID:     resp.SeekerID,
		OwnerID:      resp.OwnerID,
		StartTime:    resp.Start,
		EndTime:      resp.End,
		TotalPrice:   resp.TotalPrice,
		Status:       resp.Status,
		SpaceTitle:   resp.SpaceTitle,
		SpaceAddress: resp.SpaceAddress,
		CreatedAt:    resp.CreatedAt,
	}
}
