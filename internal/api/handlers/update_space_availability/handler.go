package update_space_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
	"github.com/parkshare/PSM-BookingService/internal/api/middleware"
	"github.com/parkshare/PSM-BookingService/internal/service/spaces"
	"github.com/parkshare/PSM-BookingService/internal/service/spaces/models"
)

const (
	msgInvalidSpaceID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "парковочная площадка не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные параметры доступности"
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

// Handle PUT /api/v1/spaces/{spaceId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spaceId из URL
	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /spaces/{id}/availability - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /spaces/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ActorID = userID

	// Обновляем доступность (сервис сам проверит права владельца)
	result, err := h.service.UpdateAvailability(r.Context(), spaceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PUT /spaces/{id}/availability - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("PUT /spaces/{id}/availability - Access denied: space_id=%d, user_id=%d",
				spaceID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("PUT /spaces/{id}/availability - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /spaces/{id}/availability - Failed to update availability: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spaces/{id}/availability - Availability updated successfully: space_id=%d, user_id=%d",
		spaceID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
