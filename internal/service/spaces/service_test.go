package spaces

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	spaceRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/space"
	"github.com/parkshare/PSM-BookingService/internal/service/spaces/models"
	"github.com/parkshare/PSM-BookingService/pkg/ptr"
	"github.com/parkshare/PSM-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeSpaceRepo struct {
	space  *domain.ParkingSpace
	spaces []*domain.ParkingSpace
	getErr error

	updated   *domain.ParkingSpace
	updateErr error
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.ParkingSpace, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.space, nil
}

func (f *fakeSpaceRepo) ListAvailable(_ context.Context) ([]*domain.ParkingSpace, error) {
	return f.spaces, nil
}

func (f *fakeSpaceRepo) UpdateAvailability(_ context.Context, space *domain.ParkingSpace) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = space
	return nil
}

type fakeSlotRepo struct {
	occupied map[int64]struct{}
	err      error
}

func (f *fakeSlotRepo) ExistsBySpace(_ context.Context, spaceID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.occupied[spaceID]
	return ok, nil
}

func (f *fakeSlotRepo) SpaceIDsWithSlots(_ context.Context) (map[int64]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.occupied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTimeString(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testSpace(t *testing.T, id int64) *domain.ParkingSpace {
	t.Helper()
	return &domain.ParkingSpace{
		ID:           id,
		OwnerID:      42,
		Title:        "Парковка у вокзала",
		Address:      "Привокзальная пл., 1",
		IsAvailable:  true,
		DateFrom:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DateTo:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		TimeFrom:     mustTimeString(t, "08:00"),
		TimeTo:       mustTimeString(t, "20:00"),
		PricePerHour: 50,
		Capacity:     1,
	}
}

func TestGetAvailability_Offerable(t *testing.T) {
	svc := NewService(
		&fakeSpaceRepo{space: testSpace(t, 7)},
		&fakeSlotRepo{occupied: map[int64]struct{}{}},
		nopLogger{},
	)

	resp, err := svc.GetAvailability(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, resp.IsOfferable)
	assert.Equal(t, "2025-06-01", resp.DateFrom)
	assert.Equal(t, "08:00", resp.TimeFrom)
	assert.Equal(t, 50.0, resp.PricePerHour)
}

func TestGetAvailability_OccupiedSpaceNotOfferable(t *testing.T) {
	// Один зафиксированный слот скрывает площадку целиком
	svc := NewService(
		&fakeSpaceRepo{space: testSpace(t, 7)},
		&fakeSlotRepo{occupied: map[int64]struct{}{7: {}}},
		nopLogger{},
	)

	resp, err := svc.GetAvailability(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, resp.IsOfferable)
}

func TestGetAvailability_UnpublishedNotOfferable(t *testing.T) {
	space := testSpace(t, 7)
	space.IsAvailable = false

	svc := NewService(
		&fakeSpaceRepo{space: space},
		&fakeSlotRepo{occupied: map[int64]struct{}{}},
		nopLogger{},
	)

	resp, err := svc.GetAvailability(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, resp.IsOfferable)
}

func TestGetAvailability_NotFound(t *testing.T) {
	svc := NewService(
		&fakeSpaceRepo{getErr: spaceRepo.ErrSpaceNotFound},
		&fakeSlotRepo{},
		nopLogger{},
	)

	_, err := svc.GetAvailability(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestListOfferable_FiltersOccupiedSpaces(t *testing.T) {
	svc := NewService(
		&fakeSpaceRepo{spaces: []*domain.ParkingSpace{
			testSpace(t, 1),
			testSpace(t, 2),
			testSpace(t, 3),
		}},
		&fakeSlotRepo{occupied: map[int64]struct{}{2: {}}},
		nopLogger{},
	)

	resp, err := svc.ListOfferable(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Spaces, 2)
	assert.Equal(t, int64(1), resp.Spaces[0].ID)
	assert.Equal(t, int64(3), resp.Spaces[1].ID)
}

func validUpdateRequest(actorID int64) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		ActorID:      actorID,
		IsAvailable:  true,
		DateFrom:     "2025-07-01",
		DateTo:       "2025-07-31",
		TimeFrom:     "09:00",
		TimeTo:       "18:00",
		PricePerHour: 60,
		PricePerDay:  ptr.Ptr(450.0),
		Capacity:     2,
	}
}

func TestUpdateAvailability_Success(t *testing.T) {
	spaces := &fakeSpaceRepo{space: testSpace(t, 7)}
	svc := NewService(spaces, &fakeSlotRepo{occupied: map[int64]struct{}{}}, nopLogger{})

	resp, err := svc.UpdateAvailability(context.Background(), 7, validUpdateRequest(42))

	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", resp.DateFrom)
	assert.Equal(t, "18:00", resp.TimeTo)
	assert.Equal(t, 60.0, resp.PricePerHour)
	assert.Equal(t, 2, resp.Capacity)

	require.NotNil(t, spaces.updated)
	assert.Equal(t, 60.0, spaces.updated.PricePerHour)
}

func TestUpdateAvailability_NotOwner(t *testing.T) {
	spaces := &fakeSpaceRepo{space: testSpace(t, 7)}
	svc := NewService(spaces, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.UpdateAvailability(context.Background(), 7, validUpdateRequest(13))

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, spaces.updated)
}

func TestUpdateAvailability_InvalidWindow(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateAvailabilityRequest)
	}{
		{"dateTo before dateFrom", func(r *models.UpdateAvailabilityRequest) {
			r.DateFrom = "2025-07-31"
			r.DateTo = "2025-07-01"
		}},
		{"timeFrom not before timeTo", func(r *models.UpdateAvailabilityRequest) {
			r.TimeFrom = "18:00"
			r.TimeTo = "09:00"
		}},
		{"non-positive hourly price", func(r *models.UpdateAvailabilityRequest) {
			r.PricePerHour = 0
		}},
		{"non-positive daily price", func(r *models.UpdateAvailabilityRequest) {
			r.PricePerDay = ptr.Ptr(-10.0)
		}},
		{"zero capacity", func(r *models.UpdateAvailabilityRequest) {
			r.Capacity = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spaces := &fakeSpaceRepo{space: testSpace(t, 7)}
			svc := NewService(spaces, &fakeSlotRepo{}, nopLogger{})

			req := validUpdateRequest(42)
			tt.mutate(req)

			_, err := svc.UpdateAvailability(context.Background(), 7, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, spaces.updated)
		})
	}
}

func TestUpdateAvailability_InvalidDateFormat(t *testing.T) {
	svc := NewService(&fakeSpaceRepo{space: testSpace(t, 7)}, &fakeSlotRepo{}, nopLogger{})

	req := validUpdateRequest(42)
	req.DateFrom = "01.07.2025"

	_, err := svc.UpdateAvailability(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAvailability_StorageError(t *testing.T) {
	spaces := &fakeSpaceRepo{space: testSpace(t, 7), updateErr: errors.New("connection reset")}
	svc := NewService(spaces, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.UpdateAvailability(context.Background(), 7, validUpdateRequest(42))
	assert.ErrorIs(t, err, ErrInternal)
}
