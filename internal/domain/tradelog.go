package domain

import "time"

// PaymentStatusPaid is the checkout provider's status for a completed payment.
// Any other status skips the confirmation email.
const PaymentStatusPaid = "paid"

// TradeLog is an immutable record of one checkout session, written once per
// webhook delivery and never mutated or deleted by this service.
type TradeLog struct {
	ID            int64
	SessionID     string
	VenueID       string
	CustomerEmail string
	CustomerName  string
	PaymentStatus string
	AmountTotal   int64 // minor currency units (cents)

	// CreatedAt is the provider's session timestamp, kept as delivered.
	// It is parsed only when a confirmation email has to be rendered.
	CreatedAt string

	LoggedAt time.Time
}

// IsPaid returns true if the checkout session completed with a successful payment
func (t *TradeLog) IsPaid() bool {
	return t.PaymentStatus == PaymentStatusPaid
}
