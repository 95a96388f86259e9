package create_venue_configs

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"
)

type ConfigService interface {
	BatchUpsert(ctx context.Context, venueID string, entries []models.BatchEntry) ([]models.UpsertConfigResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
