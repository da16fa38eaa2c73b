package decide_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	bookingRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/booking"
)

// UseCase use case решения владельца по запросу на бронирование
// Переход статуса и запись слота выполняются в одной сериализуемой
// транзакции: бронирование confirmed без слота (или наоборот) не должно
// быть наблюдаемо ни в какой момент
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case решения по бронированию
// Запись никогда не ретраится: повтор approve создал бы второй слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideBooking: booking=%d, owner=%d, decision=%s",
		req.BookingID, req.OwnerID, req.Decision)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DecideBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Переход статуса и запись слота в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DecideBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DecideBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Решение принимает только владелец площадки из бронирования
		if booking.OwnerID != req.OwnerID {
			uc.logger.Warn("DecideBooking: user=%d is not the owner of booking id=%d",
				req.OwnerID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Переходы возможны только из pending
		if !booking.CanBeDecided() {
			uc.logger.Warn("DecideBooking: booking id=%d is not pending, status=%s",
				req.BookingID, booking.Status)
			return ErrInvalidState
		}

		// 2.4. Применяем решение
		switch req.Decision {
		case DecisionApprove:
			if err := uc.approve(txCtx, booking); err != nil {
				return err
			}
		case DecisionReject:
			if err := uc.reject(txCtx, booking); err != nil {
				return err
			}
		default:
			// validateRequest уже отсёк неизвестные решения
			return ErrInvalidDecision
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DecideBooking: booking id=%d decided, status=%s", result.ID, result.Status)

	return &Response{
		ID:         result.ID,
		SpaceID:    result.SpaceID,
		SeekerID:   result.SeekerID,
		OwnerID:    result.OwnerID,
		Start:      result.StartTime,
		End:        result.EndTime,
		TotalPrice: result.TotalPrice,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// approve переводит бронирование pending -> confirmed и фиксирует слот
// Условное обновление по ожидаемому статусу: из двух конкурирующих
// подтверждений одного бронирования выигрывает ровно одно, проигравшее
// получает ErrInvalidState
func (uc *UseCase) approve(ctx context.Context, booking *domain.Booking) error {
	err := uc.bookingRepo.UpdateStatusFrom(ctx, booking.ID, domain.StatusPending, domain.StatusConfirmed)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			uc.logger.Warn("DecideBooking: lost status race for booking id=%d", booking.ID)
			return ErrInvalidState
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("DecideBooking: failed to confirm booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	// Слот зеркалирует окно бронирования на момент подтверждения
	// С этого момента площадка скрыта из выдачи
	slot := &domain.BookingSlot{
		SpaceID:   booking.SpaceID,
		BookingID: booking.ID,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
	}

	if _, err := uc.slotRepo.Create(ctx, slot); err != nil {
		uc.logger.Error("DecideBooking: failed to record slot for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to record slot: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	return nil
}

// reject переводит бронирование pending -> cancelled, слот не создаётся
func (uc *UseCase) reject(ctx context.Context, booking *domain.Booking) error {
	err := uc.bookingRepo.UpdateStatusFrom(ctx, booking.ID, domain.StatusPending, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			uc.logger.Warn("DecideBooking: lost status race for booking id=%d", booking.ID)
			return ErrInvalidState
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("DecideBooking: failed to cancel booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if _, err := ParseDecision(string(req.Decision)); err != nil {
		return err
	}

	return nil
}
