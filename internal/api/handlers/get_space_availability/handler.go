package get_space_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
	"github.com/parkshare/PSM-BookingService/internal/service/spaces"
)

const (
	msgInvalidSpaceID = "некорректный ID площадки"
	msgNotFound       = "парковочная площадка не найдена"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/availability
// Публичный: форма бронирования показывает окно и тарифы до авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spaceId из URL
	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/availability - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /spaces/{id}/availability - Failed to get availability: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/availability - Availability retrieved successfully: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, availability)
}
