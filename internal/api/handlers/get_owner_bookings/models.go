package get_owner_bookings

import (
	"strconv"

	"github.com/parkshare/PSM-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
func ToServiceRequest(ownerID, actorID int64, spaceIDStr, statusStr string) (*models.GetOwnerBookingsRequest, error) {
	req := &models.GetOwnerBookingsRequest{
		OwnerID: ownerID,
		ActorID: actorID,
	}

	if spaceIDStr != "" {
		spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.SpaceID = &spaceID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
