package list_spaces

import (
	"net/http"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/spaces
// Публичный каталог: площадки, открытые для новых запросов на бронирование
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOfferable(r.Context())
	if err != nil {
		h.logger.Error("GET /spaces - Failed to list spaces: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spaces - Spaces retrieved successfully: count=%d", len(result.Spaces))
	handlers.RespondJSON(w, http.StatusOK, result)
}
