package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	spaceRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/space"
	"github.com/parkshare/PSM-BookingService/pkg/ptr"
	"github.com/parkshare/PSM-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeSpaceRepo struct {
	space *domain.ParkingSpace
	err   error
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.ParkingSpace, error) {
	return f.space, f.err
}

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking.ID = 101
	booking.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSpace(t *testing.T) *domain.ParkingSpace {
	t.Helper()

	timeFrom, err := types.NewTimeStringFromString("08:00")
	require.NoError(t, err)
	timeTo, err := types.NewTimeStringFromString("20:00")
	require.NoError(t, err)

	return &domain.ParkingSpace{
		ID:           7,
		OwnerID:      42,
		Title:        "Крытая парковка на Лесной",
		Address:      "ул. Лесная, 5",
		IsAvailable:  true,
		DateFrom:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DateTo:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		TimeFrom:     timeFrom,
		TimeTo:       timeTo,
		PricePerHour: 50,
		PricePerDay:  ptr.Ptr(400.0),
		Capacity:     1,
	}
}

func newTestUseCase(spaces *fakeSpaceRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(spaces, bookings, &fakeTxManager{}, nopLogger{})
}

func TestSubmitBooking_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(&fakeSpaceRepo{space: testSpace(t)}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:  7,
		SeekerID: 13,
		Start:    time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(7), resp.SpaceID)
	assert.Equal(t, int64(13), resp.SeekerID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 100.00, resp.TotalPrice)
	assert.Equal(t, "Крытая парковка на Лесной", resp.SpaceTitle)
	assert.Equal(t, "ул. Лесная, 5", resp.SpaceAddress)

	// Владелец денормализован из площадки
	require.NotNil(t, bookings.created)
	assert.Equal(t, int64(42), bookings.created.OwnerID)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
}

func TestSubmitBooking_TieredPrice(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(&fakeSpaceRepo{space: testSpace(t)}, bookings)

	// 30 часов: сутки по 400 + 6 часов по 50
	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:  7,
		SeekerID: 13,
		Start:    time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 700.00, resp.TotalPrice)
}

func TestSubmitBooking_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeSpaceRepo{err: spaceRepo.ErrSpaceNotFound}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:  99,
		SeekerID: 13,
		Start:    time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestSubmitBooking_OutOfWindow(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(&fakeSpaceRepo{space: testSpace(t)}, bookings)

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:  7,
		SeekerID: 13,
		Start:    time.Date(2025, 7, 5, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 7, 5, 11, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrOutOfRangeDate)
	assert.Nil(t, bookings.created)
}

func TestSubmitBooking_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeSpaceRepo{space: testSpace(t)}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:  0,
		SeekerID: 13,
		Start:    time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
