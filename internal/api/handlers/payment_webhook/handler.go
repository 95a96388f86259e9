package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
	processEvent "github.com/m04kA/SMC-QueueSkipService/internal/usecase/process_payment_event"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamp   = "Invalid timestamp format"
)

type Handler struct {
	useCase ProcessPaymentEventUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/payments
//
// 400 с "Invalid timestamp format" не означает потерю события: trade log
// к этому моменту уже записан
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhooks/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, processEvent.ErrMalformedPayload):
			h.logger.Warn("POST /webhooks/payments - Malformed payload: session_id=%s, error=%v",
				req.Record.SessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, processEvent.ErrInvalidTimestamp):
			h.logger.Warn("POST /webhooks/payments - Invalid timestamp: session_id=%s, created_at=%q",
				req.Record.SessionID, req.Record.CreatedAt)
			handlers.RespondBadRequest(w, msgInvalidTimestamp)

		default:
			h.logger.Error("POST /webhooks/payments - Failed to process event: session_id=%s, error=%v",
				req.Record.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/payments - Event processed: session_id=%s, status=%s",
		req.Record.SessionID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, &WebhookResponse{Success: true})
}
