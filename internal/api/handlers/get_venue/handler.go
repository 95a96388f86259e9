package get_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
	"github.com/m04kA/SMC-QueueSkipService/internal/service/venues"
)

const (
	msgMissingVenueID = "venue id is required"
	msgVenueNotFound  = "venue not found"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]
	if venueID == "" {
		h.logger.Warn("GET /venues/{id} - Missing venue ID")
		handlers.RespondBadRequest(w, msgMissingVenueID)
		return
	}

	venue, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id} - Failed to get venue: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id} - Venue returned: venue_id=%s", venueID)
	handlers.RespondJSON(w, http.StatusOK, venue)
}
