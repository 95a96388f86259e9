package get_venue_config

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"
)

type ConfigService interface {
	GetByVenue(ctx context.Context, venueID string) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
