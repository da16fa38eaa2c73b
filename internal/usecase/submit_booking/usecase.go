package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	spaceRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/space"
)

// secondsPerHour перевод длительности интервала в часы
const secondsPerHour = 3600.0

// UseCase use case подачи запроса на бронирование
// Проверяет запрошенный интервал против окна доступности площадки,
// фиксирует цену и создаёт бронирование в статусе pending
// Запрос в pending не блокирует площадку: конкурирующие запросы на
// пересекающиеся интервалы допустимы, эксклюзивность наступает только
// при подтверждении владельцем
type UseCase struct {
	spaceRepo   SpaceRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:   spaceRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case подачи запроса на бронирование
// Чтение площадки и создание бронирования выполняются в одной транзакции:
// цена и окно считаются от одного и того же состояния площадки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: space=%d, seeker=%d, start=%s, end=%s",
		req.SpaceID, req.SeekerID, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result *domain.Booking
		space  *domain.ParkingSpace
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Получаем площадку
		var err error
		space, err = uc.spaceRepo.GetByID(txCtx, req.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("SubmitBooking: space id=%d not found", req.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("SubmitBooking: failed to get space id=%d: %v", req.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}

		// 3. Проверяем оба конца интервала против окна доступности
		// Повалидированные при вводе поля формы здесь перепроверяются
		// целиком: частичной валидации на вводе доверять нельзя
		if err := validateWindow(space.Window(), req.Start, req.End); err != nil {
			uc.logger.Warn("SubmitBooking: window validation failed for space id=%d: %v", req.SpaceID, err)
			return err
		}

		// 4. Вычисляем длительность в часах и фиксируем цену
		durationHours := req.End.Sub(req.Start).Seconds() / secondsPerHour

		totalPrice, err := calculatePrice(durationHours, space.PricePerHour, space.PricePerDay)
		if err != nil {
			uc.logger.Warn("SubmitBooking: pricing failed for space id=%d: %v", req.SpaceID, err)
			return err
		}

		// 5. Создаем бронирование в статусе pending
		// Владелец денормализуется из площадки на момент создания
		booking := &domain.Booking{
			SpaceID:    req.SpaceID,
			SeekerID:   req.SeekerID,
			OwnerID:    space.OwnerID,
			StartTime:  req.Start,
			EndTime:    req.End,
			TotalPrice: totalPrice,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: successfully created booking id=%d, price=%.2f",
		result.ID, result.TotalPrice)

	return &Response{
		ID:           result.ID,
		SpaceID:      result.SpaceID,
		SeekerID:     result.SeekerID,
		OwnerID:      result.OwnerID,
		Start:        result.StartTime,
		End:          result.EndTime,
		TotalPrice:   result.TotalPrice,
		Status:       string(result.Status),
		SpaceTitle:   space.Title,
		SpaceAddress: space.Address,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
