package process_payment_event

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
)

type TradeLogRepository interface {
	Insert(ctx context.Context, log *domain.TradeLog) (*domain.TradeLog, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.TradeLog, error)
}

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
