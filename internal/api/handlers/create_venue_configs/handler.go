package create_venue_configs

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
	msgEmptyConfigs       = "configs must not be empty"
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

// Handle PUT /api/v1/venues/{venueId}/queue-skip-configs
// Записи применяются независимо: атомарности между ними нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]
	if venueID == "" {
		h.logger.Warn("PUT /venues/{id}/queue-skip-configs - Missing venue ID")
		handlers.RespondBadRequest(w, msgMissingVenueID)
		return
	}

	var req BatchUpsertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/queue-skip-configs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Configs) == 0 {
		h.logger.Warn("PUT /venues/{id}/queue-skip-configs - Empty configs: venue_id=%s", venueID)
		handlers.RespondBadRequest(w, msgEmptyConfigs)
		return
	}

	results, err := h.service.BatchUpsert(r.Context(), venueID, req.Configs)
	if err != nil {
		switch {
		case errors.Is(err, qsconfig.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/queue-skip-configs - Invalid input: venue_id=%s, error=%v",
				venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /venues/{id}/queue-skip-configs - Failed to upsert configs: venue_id=%s, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/queue-skip-configs - Upserted %d entries: venue_id=%s",
		len(results), venueID)
	handlers.RespondJSON(w, http.StatusOK, &BatchUpsertResponse{Results: results})
}
