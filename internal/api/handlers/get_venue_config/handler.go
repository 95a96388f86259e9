package get_venue_config

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
)

const msgMissingVenueID = "venue id is required"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/queue-skip-config
// Для заведения без конфигурации возвращает пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]
	if venueID == "" {
		h.logger.Warn("GET /venues/{id}/queue-skip-config - Missing venue ID")
		handlers.RespondBadRequest(w, msgMissingVenueID)
		return
	}

	result, err := h.service.GetByVenue(r.Context(), venueID)
	if err != nil {
		h.logger.Error("GET /venues/{id}/queue-skip-config - Failed to get configs: venue_id=%s, error=%v",
			venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/{id}/queue-skip-config - Returned %d config days: venue_id=%s",
		len(result.Configs), venueID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
