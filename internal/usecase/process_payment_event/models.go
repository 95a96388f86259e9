package process_payment_event

import "github.com/m04kA/SMC-QueueSkipService/internal/domain"

// Статусы завершения обработки события
const (
	StatusNotificationSent    = "notification_sent"
	StatusNotificationSkipped = "notification_skipped"
)

// Request - запись события от платёжного провайдера
type Request struct {
	SessionID     string
	VenueID       string
	CustomerEmail string
	CustomerName  string
	PaymentStatus string
	AmountTotal   int64
	CreatedAt     string
}

// Response - результат обработки события
type Response struct {
	TradeLogID int64
	Status     string
}

func (r *Request) toDomain() *domain.TradeLog {
	return &domain.TradeLog{
		SessionID:     r.SessionID,
		VenueID:       r.VenueID,
		CustomerEmail: r.CustomerEmail,
		CustomerName:  r.CustomerName,
		PaymentStatus: r.PaymentStatus,
		AmountTotal:   r.AmountTotal,
		CreatedAt:     r.CreatedAt,
	}
}
