package create_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
	createSession "github.com/m04kA/SMC-QueueSkipService/internal/usecase/create_checkout_session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgVenueNotFound      = "venue not found"
)

type Handler struct {
	useCase CreateCheckoutSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSession.ErrInvalidInput):
			h.logger.Warn("POST /checkout/sessions - Invalid input: venue_id=%s, error=%v", req.VenueID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createSession.ErrVenueNotFound):
			h.logger.Warn("POST /checkout/sessions - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("POST /checkout/sessions - Failed to create session: venue_id=%s, error=%v",
				req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/sessions - Session created: session_id=%s, venue_id=%s",
		result.SessionID, req.VenueID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
