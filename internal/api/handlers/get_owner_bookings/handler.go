package get_owner_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
	"github.com/parkshare/PSM-BookingService/internal/api/middleware"
	"github.com/parkshare/PSM-BookingService/internal/service/bookings"
)

const (
	msgInvalidOwnerID = "некорректный ID владельца"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры запроса"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/bookings
// Query params: spaceId, status (опционально)
// Дашборд владельца: status=pending - входящие запросы,
// status=confirmed - подтверждённые бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем ownerId из URL
	vars := mux.Vars(r)
	ownerIDStr := vars["ownerId"]

	ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/bookings - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owners/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	spaceIDStr := r.URL.Query().Get("spaceId")
	statusStr := r.URL.Query().Get("status")

	serviceReq, err := ToServiceRequest(ownerID, userID, spaceIDStr, statusStr)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования владельца (сервис сам проверит права доступа)
	result, err := h.service.GetOwnerBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /owners/{id}/bookings - Access denied: owner_id=%d, user_id=%d",
				ownerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/bookings - Invalid filter: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /owners/{id}/bookings - Failed to get bookings: owner_id=%d, error=%v",
				ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/bookings - Bookings retrieved successfully: owner_id=%d, count=%d",
		ownerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
