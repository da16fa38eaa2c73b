package models

import (
	"time"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	"github.com/parkshare/PSM-BookingService/pkg/types"
)

// Request модели

// UpdateAvailabilityRequest запрос на обновление окна доступности,
// тарифов и вместимости площадки (форма редактирования владельца)
type UpdateAvailabilityRequest struct {
	ActorID int64 `json:"-"` // кто меняет (из X-User-ID)

	IsAvailable  bool             `json:"isAvailable"`
	DateFrom     string           `json:"dateFrom"` // "2025-01-01"
	DateTo       string           `json:"dateTo"`
	TimeFrom     types.TimeString `json:"timeFrom"` // "08:00"
	TimeTo       types.TimeString `json:"timeTo"`
	PricePerHour float64          `json:"pricePerHour"`
	PricePerDay  *float64         `json:"pricePerDay,omitempty"`
	Capacity     int              `json:"capacity"`
}

// ApplyToSpace переносит значения запроса в domain модель площадки
func (r *UpdateAvailabilityRequest) ApplyToSpace(space *domain.ParkingSpace) error {
	dateFrom, err := time.Parse(domain.DateFormat, r.DateFrom)
	if err != nil {
		return err
	}

	dateTo, err := time.Parse(domain.DateFormat, r.DateTo)
	if err != nil {
		return err
	}

	space.IsAvailable = r.IsAvailable
	space.DateFrom = dateFrom
	space.DateTo = dateTo
	space.TimeFrom = r.TimeFrom
	space.TimeTo = r.TimeTo
	space.PricePerHour = r.PricePerHour
	space.PricePerDay = r.PricePerDay
	space.Capacity = r.Capacity

	return nil
}

// Response модели

// AvailabilityResponse окно доступности и тарифы площадки
// Отдаётся форме бронирования: ей нужны границы окна для подсказок
// и тарифы для предварительного расчёта цены
type AvailabilityResponse struct {
	SpaceID      int64    `json:"spaceId"`
	DateFrom     string   `json:"dateFrom"`
	DateTo       string   `json:"dateTo"`
	TimeFrom     string   `json:"timeFrom"`
	TimeTo       string   `json:"timeTo"`
	PricePerHour float64  `json:"pricePerHour"`
	PricePerDay  *float64 `json:"pricePerDay,omitempty"`
	Capacity     int      `json:"capacity"`

	// IsOfferable площадка опубликована и не имеет зафиксированных слотов
	IsOfferable bool `json:"isOfferable"`
}

// SpaceResponse ответ с данными площадки для выдачи
type SpaceResponse struct {
	ID           int64    `json:"id"`
	OwnerID      int64    `json:"ownerId"`
	Title        string   `json:"title"`
	Address      string   `json:"address"`
	DateFrom     string   `json:"dateFrom"`
	DateTo       string   `json:"dateTo"`
	TimeFrom     string   `json:"timeFrom"`
	TimeTo       string   `json:"timeTo"`
	PricePerHour float64  `json:"pricePerHour"`
	PricePerDay  *float64 `json:"pricePerDay,omitempty"`
	Capacity     int      `json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
}

// SpaceListResponse ответ со списком площадок
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// Методы конвертации

// FromDomainAvailability конвертирует площадку в ответ с окном доступности
func FromDomainAvailability(s *domain.ParkingSpace, offerable bool) *AvailabilityResponse {
	return &AvailabilityResponse{
		SpaceID:      s.ID,
		DateFrom:     s.DateFrom.Format(domain.DateFormat),
		DateTo:       s.DateTo.Format(domain.DateFormat),
		TimeFrom:     s.TimeFrom.String(),
		TimeTo:       s.TimeTo.String(),
		PricePerHour: s.PricePerHour,
		PricePerDay:  s.PricePerDay,
		Capacity:     s.Capacity,
		IsOfferable:  offerable,
	}
}

// FromDomainSpace конвертирует domain модель площадки в DTO
func FromDomainSpace(s *domain.ParkingSpace) *SpaceResponse {
	if s == nil {
		return nil
	}

	return &SpaceResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Title:        s.Title,
		Address:      s.Address,
		DateFrom:     s.DateFrom.Format(domain.DateFormat),
		DateTo:       s.DateTo.Format(domain.DateFormat),
		TimeFrom:     s.TimeFrom.String(),
		TimeTo:       s.TimeTo.String(),
		PricePerHour: s.PricePerHour,
		PricePerDay:  s.PricePerDay,
		Capacity:     s.Capacity,
		CreatedAt:    s.CreatedAt,
	}
}

// FromDomainSpaceList конвертирует список площадок в DTO
func FromDomainSpaceList(spaces []*domain.ParkingSpace) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}

	for _, space := range spaces {
		if spaceResp := FromDomainSpace(space); spaceResp != nil {
			resp.Spaces = append(resp.Spaces, *spaceResp)
		}
	}

	return resp
}
