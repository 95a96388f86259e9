package create_checkout_session

import (
	"context"

	createSession "github.com/m04kA/SMC-QueueSkipService/internal/usecase/create_checkout_session"
)

type CreateCheckoutSessionUseCase interface {
	Execute(ctx context.Context, req *createSession.Request) (*createSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
