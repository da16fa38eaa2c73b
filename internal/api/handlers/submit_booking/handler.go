package submit_booking

import (
	"errors"
	"net/http"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
	"github.com/parkshare/PSM-BookingService/internal/api/middleware"
	submitBooking "github.com/parkshare/PSM-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimestamp   = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSpaceNotFound      = "парковочная площадка не найдена"
	msgOutOfRangeDate     = "дата бронирования вне окна доступности площадки"
	msgOutOfRangeTime     = "время бронирования вне окна доступности площадки"
	msgInvalidOrder       = "конец бронирования должен быть позже начала"
	msgInvalidDuration    = "длительность бронирования должна быть положительной"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	seekerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(seekerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%d, seeker_id=%d", req.SpaceID, seekerID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, submitBooking.ErrOutOfRangeDate):
			h.logger.Warn("POST /bookings - Date out of range: space_id=%d, seeker_id=%d", req.SpaceID, seekerID)
			handlers.RespondBadRequest(w, msgOutOfRangeDate)

		case errors.Is(err, submitBooking.ErrOutOfRangeTime):
			h.logger.Warn("POST /bookings - Time out of range: space_id=%d, seeker_id=%d", req.SpaceID, seekerID)
			handlers.RespondBadRequest(w, msgOutOfRangeTime)

		case errors.Is(err, submitBooking.ErrInvalidOrder):
			h.logger.Warn("POST /bookings - Invalid time order: space_id=%d, seeker_id=%d", req.SpaceID, seekerID)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		case errors.Is(err, submitBooking.ErrNonPositiveDuration):
			h.logger.Warn("POST /bookings - Non-positive duration: space_id=%d, seeker_id=%d", req.SpaceID, seekerID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: space_id=%d, seeker_id=%d", req.SpaceID, seekerID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: space_id=%d, seeker_id=%d, error=%v",
				req.SpaceID, seekerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking submitted successfully: booking_id=%d, space_id=%d, seeker_id=%d",
		result.ID, req.SpaceID, seekerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
