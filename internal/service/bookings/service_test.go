package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	bookingRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/booking"
	"github.com/parkshare/PSM-BookingService/internal/service/bookings/models"
	"github.com/parkshare/PSM-BookingService/pkg/ptr"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	err      error

	// failOnce имитирует единичный сбой хранилища
	failOnce bool
	calls    int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	f.calls++
	if f.failOnce && f.calls == 1 {
		return nil, errors.New("connection reset")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetBySeekerID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	f.calls++
	if f.failOnce && f.calls == 1 {
		return nil, errors.New("connection reset")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByOwnerWithFilter(_ context.Context, _ domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         101,
		SpaceID:    7,
		SeekerID:   13,
		OwnerID:    42,
		StartTime:  time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
		TotalPrice: 100,
		Status:     domain.StatusConfirmed,
	}
}

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestGetByID_SeekerAndOwnerHaveAccess(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	for _, actorID := range []int64{13, 42} {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, now)

		resp, err := svc.GetByID(context.Background(), 101, actorID)
		require.NoError(t, err)
		assert.Equal(t, int64(101), resp.ID)
	}
}

func TestGetByID_StrangerDenied(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, now)

	_, err := svc.GetByID(context.Background(), 101, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, time.Now())

	_, err := svc.GetByID(context.Background(), 999, 13)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_RetriesStorageError(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: confirmedBooking(), failOnce: true}
	svc := newTestService(repo, now)

	resp, err := svc.GetByID(context.Background(), 101, 13)

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 2, repo.calls)
}

func TestGetByID_CompletedProjection(t *testing.T) {
	booking := confirmedBooking()

	// До конца бронирования статус confirmed
	beforeEnd := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{booking: booking}, beforeEnd)

	resp, err := svc.GetByID(context.Background(), 101, 13)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// После конца показывается completed, хранимый статус не меняется
	afterEnd := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc = newTestService(&fakeBookingRepo{booking: booking}, afterEnd)

	resp, err = svc.GetByID(context.Background(), 101, 13)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestGetSeekerBookings_SelfOnly(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, time.Now())

	_, err := svc.GetSeekerBookings(context.Background(), &models.GetSeekerBookingsRequest{
		SeekerID: 13,
		ActorID:  42,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetSeekerBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, time.Now())

	_, err := svc.GetSeekerBookings(context.Background(), &models.GetSeekerBookingsRequest{
		SeekerID: 13,
		ActorID:  13,
		Status:   ptr.Ptr("parked"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSeekerBookings_CompletedNotQueryable(t *testing.T) {
	// completed - проекция, фильтровать по ней в БД нельзя
	svc := newTestService(&fakeBookingRepo{}, time.Now())

	_, err := svc.GetSeekerBookings(context.Background(), &models.GetSeekerBookingsRequest{
		SeekerID: 13,
		ActorID:  13,
		Status:   ptr.Ptr("completed"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOwnerBookings_Success(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
	svc := newTestService(repo, now)

	resp, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID: 42,
		ActorID: 42,
		Status:  ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(101), resp.Bookings[0].ID)
}

func TestGetOwnerBookings_SelfOnly(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, time.Now())

	_, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID: 42,
		ActorID: 13,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
