package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	spaceRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/space"
	"github.com/parkshare/PSM-BookingService/internal/service/spaces/models"
)

// Service сервис площадок: каталог, окно доступности, настройки владельца
type Service struct {
	spaceRepo SpaceRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(spaceRepo SpaceRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// GetAvailability получает окно доступности и тарифы площадки
// Открытый метод: форма бронирования показывает границы окна до авторизации
func (s *Service) GetAvailability(ctx context.Context, spaceID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: fetching availability for space=%d", spaceID)

	space, err := s.getSpaceWithRetry(ctx, spaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetAvailability: space id=%d not found", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetAvailability: repository error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	hasSlots, err := s.slotRepo.ExistsBySpace(ctx, spaceID)
	if err != nil {
		// Одна повторная попытка для идемпотентного чтения
		hasSlots, err = s.slotRepo.ExistsBySpace(ctx, spaceID)
	}
	if err != nil {
		s.logger.Error("GetAvailability: slot lookup error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: GetAvailability - slot lookup error: %v", ErrInternal, err)
	}

	offerable := space.IsAvailable && !hasSlots

	s.logger.Info("GetAvailability: successfully fetched availability for space=%d, offerable=%v",
		spaceID, offerable)
	return models.FromDomainAvailability(space, offerable), nil
}

// ListOfferable получает каталог площадок, открытых для новых запросов
// Площадка уходит из выдачи, когда владелец снял её с публикации или
// по ней уже зафиксирован слот подтверждённого бронирования
func (s *Service) ListOfferable(ctx context.Context) (*models.SpaceListResponse, error) {
	s.logger.Info("ListOfferable: fetching offerable spaces")

	spaces, err := s.spaceRepo.ListAvailable(ctx)
	if err != nil {
		// Одна повторная попытка для идемпотентного чтения
		spaces, err = s.spaceRepo.ListAvailable(ctx)
	}
	if err != nil {
		s.logger.Error("ListOfferable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOfferable - repository error: %v", ErrInternal, err)
	}

	// Один запрос к журналу слотов вместо exists на каждую площадку
	occupied, err := s.slotRepo.SpaceIDsWithSlots(ctx)
	if err != nil {
		occupied, err = s.slotRepo.SpaceIDsWithSlots(ctx)
	}
	if err != nil {
		s.logger.Error("ListOfferable: slot lookup error: %v", err)
		return nil, fmt.Errorf("%w: ListOfferable - slot lookup error: %v", ErrInternal, err)
	}

	offerable := make([]*domain.ParkingSpace, 0, len(spaces))
	for _, space := range spaces {
		if _, taken := occupied[space.ID]; taken {
			continue
		}
		offerable = append(offerable, space)
	}

	s.logger.Info("ListOfferable: successfully fetched %d offerable spaces (of %d available)",
		len(offerable), len(spaces))
	return models.FromDomainSpaceList(offerable), nil
}

// UpdateAvailability обновляет окно доступности, тарифы и вместимость
// Менять площадку может только её владелец
func (s *Service) UpdateAvailability(ctx context.Context, spaceID int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("UpdateAvailability: updating space=%d by user=%d", spaceID, req.ActorID)

	space, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("UpdateAvailability: space id=%d not found", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateAvailability: repository error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}

	if space.OwnerID != req.ActorID {
		s.logger.Warn("UpdateAvailability: access denied for user=%d to space=%d", req.ActorID, spaceID)
		return nil, ErrAccessDenied
	}

	if err := req.ApplyToSpace(space); err != nil {
		s.logger.Warn("UpdateAvailability: invalid dates for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	if err := validateSpace(space); err != nil {
		s.logger.Warn("UpdateAvailability: validation failed for space=%d: %v", spaceID, err)
		return nil, err
	}

	if err := s.spaceRepo.UpdateAvailability(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("UpdateAvailability: space id=%d disappeared during update", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateAvailability: update error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: UpdateAvailability - update error: %v", ErrInternal, err)
	}

	hasSlots, err := s.slotRepo.ExistsBySpace(ctx, spaceID)
	if err != nil {
		hasSlots, err = s.slotRepo.ExistsBySpace(ctx, spaceID)
	}
	if err != nil {
		s.logger.Error("UpdateAvailability: slot lookup error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: UpdateAvailability - slot lookup error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: successfully updated space=%d", spaceID)
	return models.FromDomainAvailability(space, space.IsAvailable && !hasSlots), nil
}

// getSpaceWithRetry читает площадку с одной повторной попыткой
// Ретраится только ошибка хранилища, не ErrSpaceNotFound
func (s *Service) getSpaceWithRetry(ctx context.Context, id int64) (*domain.ParkingSpace, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, spaceRepo.ErrSpaceNotFound) {
		space, err = s.spaceRepo.GetByID(ctx, id)
	}
	return space, err
}

// validateSpace проверяет согласованность окна, тарифов и вместимости
func validateSpace(space *domain.ParkingSpace) error {
	if space.DateTo.Before(space.DateFrom) {
		return fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}

	if err := space.TimeFrom.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeFrom", ErrInvalidInput)
	}
	if err := space.TimeTo.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeTo", ErrInvalidInput)
	}
	if !space.TimeFrom.IsBefore(space.TimeTo) {
		return fmt.Errorf("%w: timeFrom must be before timeTo", ErrInvalidInput)
	}

	if space.PricePerHour <= 0 {
		return fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidInput)
	}
	if space.PricePerDay != nil && *space.PricePerDay <= 0 {
		return fmt.Errorf("%w: pricePerDay must be positive", ErrInvalidInput)
	}

	if space.Capacity < domain.MinCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinCapacity)
	}

	return nil
}
