package decide_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	bookingRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/booking"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	updateErr   error
	updateCalls int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	// Копия: use case мутирует результат после успешного перехода
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(_ context.Context, _ int64, from, to domain.BookingStatus) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.booking.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = to
	return nil
}

type fakeSlotRepo struct {
	created []*domain.BookingSlot
	err     error
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.BookingSlot) (*domain.BookingSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	slot.ID = int64(len(f.created) + 1)
	f.created = append(f.created, slot)
	return slot, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         101,
		SpaceID:    7,
		SeekerID:   13,
		OwnerID:    42,
		StartTime:  time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
		TotalPrice: 100,
		Status:     domain.StatusPending,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo) *UseCase {
	return NewUseCase(bookings, slots, &fakeTxManager{}, nopLogger{})
}

func TestDecideBooking_Approve(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	slots := &fakeSlotRepo{}
	uc := newTestUseCase(bookings, slots)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 101,
		OwnerID:   42,
		Decision:  DecisionApprove,
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// Ровно один слот, зеркалирующий окно бронирования
	require.Len(t, slots.created, 1)
	slot := slots.created[0]
	assert.Equal(t, int64(7), slot.SpaceID)
	assert.Equal(t, int64(101), slot.BookingID)
	assert.Equal(t, resp.Start, slot.StartTime)
	assert.Equal(t, resp.End, slot.EndTime)
}

func TestDecideBooking_Reject(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	slots := &fakeSlotRepo{}
	uc := newTestUseCase(bookings, slots)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 101,
		OwnerID:   42,
		Decision:  DecisionReject,
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	// При отклонении слот не создаётся
	assert.Empty(t, slots.created)
}

func TestDecideBooking_SecondDecisionRejected(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	slots := &fakeSlotRepo{}
	uc := newTestUseCase(bookings, slots)

	req := &Request{BookingID: 101, OwnerID: 42, Decision: DecisionApprove}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторное решение по тому же бронированию отклоняется,
	// второй слот не появляется
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, slots.created, 1)
}

func TestDecideBooking_LostStatusRace(t *testing.T) {
	// GetByID ещё видит pending, но условное обновление проигрывает гонку
	bookings := &fakeBookingRepo{
		booking:   pendingBooking(),
		updateErr: bookingRepo.ErrStatusConflict,
	}
	slots := &fakeSlotRepo{}
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 101,
		OwnerID:   42,
		Decision:  DecisionApprove,
	})

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, slots.created)
}

func TestDecideBooking_NotOwner(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	uc := newTestUseCase(bookings, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 101,
		OwnerID:   13, // арендатор, не владелец
		Decision:  DecisionApprove,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, bookings.updateCalls)
}

func TestDecideBooking_NotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 999,
		OwnerID:   42,
		Decision:  DecisionReject,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDecideBooking_InvalidDecision(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: pendingBooking()}, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 101,
		OwnerID:   42,
		Decision:  Decision("maybe"),
	})

	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision("approve")
	require.NoError(t, err)
	assert.Equal(t, DecisionApprove, d)

	d, err = ParseDecision("reject")
	require.NoError(t, err)
	assert.Equal(t, DecisionReject, d)

	_, err = ParseDecision("cancel")
	assert.ErrorIs(t, err, ErrInvalidDecision)
}
