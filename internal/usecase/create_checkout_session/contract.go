package create_checkout_session

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	"github.com/m04kA/SMC-QueueSkipService/internal/integrations/checkout"
)

type VenueRepository interface {
	GetByID(ctx context.Context, venueID string) (*domain.Venue, error)
}

type CheckoutClient interface {
	CreateSession(ctx context.Context, params *checkout.SessionParams) (*checkout.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
