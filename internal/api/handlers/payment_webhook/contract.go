package payment_webhook

import (
	"context"

	processEvent "github.com/m04kA/SMC-QueueSkipService/internal/usecase/process_payment_event"
)

type ProcessPaymentEventUseCase interface {
	Execute(ctx context.Context, req *processEvent.Request) (*processEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
