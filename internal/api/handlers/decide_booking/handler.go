package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
	"github.com/parkshare/PSM-BookingService/internal/api/middleware"
	decideBooking "github.com/parkshare/PSM-BookingService/internal/usecase/decide_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDecision    = "некорректное решение, ожидается approve или reject"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotPending         = "решение по бронированию уже принято"
)

type Handler struct {
	useCase DecideBookingUseCase
	logger  Logger
}

func NewHandler(useCase DecideBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	decision, err := decideBooking.ParseDecision(req.Decision)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid decision %q: booking_id=%d", req.Decision, bookingID)
		handlers.RespondBadRequest(w, msgInvalidDecision)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &decideBooking.Request{
		BookingID: bookingID,
		OwnerID:   ownerID,
		Decision:  decision,
	})
	if err != nil {
		switch {
		case errors.Is(err, decideBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, decideBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/decision - Access denied: booking_id=%d, user_id=%d",
				bookingID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, decideBooking.ErrInvalidState):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not pending: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		case errors.Is(err, decideBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/decision - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/decision - Failed to decide booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/decision - Decision applied: booking_id=%d, owner_id=%d, status=%s",
		bookingID, ownerID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
