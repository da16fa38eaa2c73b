package get_seeker_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
	"github.com/parkshare/PSM-BookingService/internal/api/middleware"
	"github.com/parkshare/PSM-BookingService/internal/service/bookings"
	"github.com/parkshare/PSM-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidSeekerID = "некорректный ID арендатора"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/seekers/{seekerId}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем seekerId из URL
	vars := mux.Vars(r)
	seekerIDStr := vars["seekerId"]

	seekerID, err := strconv.ParseInt(seekerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /seekers/{id}/bookings - Invalid seeker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeekerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /seekers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetSeekerBookingsRequest{
		SeekerID: seekerID,
		ActorID:  userID,
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	// Получаем историю бронирований (сервис сам проверит права доступа)
	result, err := h.service.GetSeekerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /seekers/{id}/bookings - Access denied: seeker_id=%d, user_id=%d",
				seekerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /seekers/{id}/bookings - Invalid status: seeker_id=%d", seekerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /seekers/{id}/bookings - Failed to get bookings: seeker_id=%d, error=%v",
				seekerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /seekers/{id}/bookings - Bookings retrieved successfully: seeker_id=%d, count=%d",
		seekerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
