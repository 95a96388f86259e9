package payment_webhook

import (
	processEvent "github.com/m04kA/SMC-QueueSkipService/internal/usecase/process_payment_event"
)

// TradeLogRecord запись события в теле вебхука
type TradeLogRecord struct {
	SessionID     string `json:"session_id"`
	VenueID       string `json:"venue_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	CreatedAt     string `json:"created_at"`
}

// WebhookRequest HTTP request model: провайдер оборачивает запись в "record"
type WebhookRequest struct {
	Record TradeLogRecord `json:"record"`
}

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Success bool `json:"success"`
}

// ToUseCaseRequest конвертирует тело вебхука в модель use case
func (r *WebhookRequest) ToUseCaseRequest() *processEvent.Request {
	return &processEvent.Request{
		SessionID:     r.Record.SessionID,
		VenueID:       r.Record.VenueID,
		CustomerEmail: r.Record.CustomerEmail,
		CustomerName:  r.Record.CustomerName,
		PaymentStatus: r.Record.PaymentStatus,
		AmountTotal:   r.Record.AmountTotal,
		CreatedAt:     r.Record.CreatedAt,
	}
}
