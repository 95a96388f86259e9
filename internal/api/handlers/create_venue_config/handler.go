package create_venue_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig"
)

const (
	msgMissingVenueID     = "venue id is required"
	msgInvalidRequestBody = "invalid request body"
)

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

// Handle PUT /api/v1/venues/{venueId}/queue-skip-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]
	if venueID == "" {
		h.logger.Warn("PUT /venues/{id}/queue-skip-config - Missing venue ID")
		handlers.RespondBadRequest(w, msgMissingVenueID)
		return
	}

	var req UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/queue-skip-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertDayAndHour(r.Context(), req.ToServiceRequest(venueID))
	if err != nil {
		switch {
		case errors.Is(err, qsconfig.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/queue-skip-config - Invalid input: venue_id=%s, error=%v",
				venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /venues/{id}/queue-skip-config - Failed to upsert config: venue_id=%s, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/queue-skip-config - Config upserted: venue_id=%s, day_id=%d, hour_id=%d",
		venueID, result.ConfigDayID, result.ConfigHourID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
