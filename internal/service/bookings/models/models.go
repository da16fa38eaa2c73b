package models

import (
	"errors"
	"time"

	"github.com/parkshare/PSM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetSeekerBookingsRequest запрос на получение бронирований арендатора
type GetSeekerBookingsRequest struct {
	SeekerID int64   `json:"seekerId"`
	ActorID  int64   `json:"-"`                // кто запрашивает (из X-User-ID)
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetOwnerBookingsRequest запрос на получение бронирований владельца
type GetOwnerBookingsRequest struct {
	OwnerID int64   `json:"ownerId"`
	ActorID int64   `json:"-"`
	SpaceID *int64  `json:"spaceId,omitempty"` // Фильтр по площадке (опционально)
	Status  *string `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOwnerBookingsRequest) ToDomainFilter() (domain.OwnerBookingsFilter, error) {
	filter := domain.OwnerBookingsFilter{
		OwnerID: r.OwnerID,
		SpaceID: r.SpaceID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64     `json:"id"`
	SpaceID    int64     `json:"spaceId"`
	SeekerID   int64     `json:"seekerId"`
	OwnerID    int64     `json:"ownerId"`
	StartTime  time.Time `json:"startTime"` // ISO 8601 с таймзоной
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`

	// Status отображаемый статус: confirmed с прошедшим endTime
	// показывается как completed, в БД при этом хранится confirmed
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// now нужен для проекции статуса completed
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		SpaceID:    b.SpaceID,
		SeekerID:   b.SeekerID,
		OwnerID:    b.OwnerID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		Status:     string(b.EffectiveStatus(now)),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
// Принимаются только хранимые статусы: completed - проекция, по ней
// нельзя фильтровать в БД
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
