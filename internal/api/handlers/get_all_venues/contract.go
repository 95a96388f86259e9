package get_all_venues

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/service/venues/models"
)

type VenueService interface {
	List(ctx context.Context) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
