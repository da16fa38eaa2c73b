package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	bookingRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/booking"
	"github.com/parkshare/PSM-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Все методы идемпотентны, поэтому при ошибке хранилища выполняется
// одна повторная попытка. Записей здесь нет - решения по бронированиям
// проходят через usecase decide_booking и не ретраятся
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Доступ имеют только участники бронирования: арендатор и владелец площадки
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actorID)

	booking, err := s.getByIDWithRetry(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.SeekerID != actorID && booking.OwnerID != actorID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actorID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetSeekerBookings получает историю бронирований арендатора
// Арендатор видит только собственную историю
func (s *Service) GetSeekerBookings(ctx context.Context, req *models.GetSeekerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSeekerBookings: fetching bookings for seeker=%d, status=%v", req.SeekerID, req.Status)

	if req.SeekerID != req.ActorID {
		s.logger.Warn("GetSeekerBookings: access denied for user=%d to seeker=%d history",
			req.ActorID, req.SeekerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetSeekerBookings: invalid status=%s for seeker=%d", *req.Status, req.SeekerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetBySeekerID(ctx, req.SeekerID, domainStatus)
	if err != nil {
		// Одна повторная попытка для идемпотентного чтения
		bookings, err = s.bookingRepo.GetBySeekerID(ctx, req.SeekerID, domainStatus)
	}
	if err != nil {
		s.logger.Error("GetSeekerBookings: repository error for seeker=%d: %v", req.SeekerID, err)
		return nil, fmt.Errorf("%w: GetSeekerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSeekerBookings: successfully fetched %d bookings for seeker=%d",
		len(bookings), req.SeekerID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// GetOwnerBookings получает бронирования владельца с фильтрацией
// Используется дашбордом владельца: вкладка запросов (status=pending)
// и вкладка подтверждённых бронирований (status=confirmed)
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d, space=%v, status=%v",
		req.OwnerID, req.SpaceID, req.Status)

	if req.OwnerID != req.ActorID {
		s.logger.Warn("GetOwnerBookings: access denied for user=%d to owner=%d bookings",
			req.ActorID, req.OwnerID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetOwnerBookings: invalid filter for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		// Одна повторная попытка для идемпотентного чтения
		bookings, err = s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	}
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d bookings for owner=%d",
		len(bookings), req.OwnerID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// getByIDWithRetry читает бронирование с одной повторной попыткой
// Ретраится только ошибка хранилища, не ErrBookingNotFound
func (s *Service) getByIDWithRetry(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		booking, err = s.bookingRepo.GetByID(ctx, id)
	}
	return booking, err
}
