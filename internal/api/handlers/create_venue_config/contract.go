package create_venue_config

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"
)

type ConfigService interface {
	UpsertDayAndHour(ctx context.Context, req *models.UpsertConfigRequest) (*models.UpsertConfigResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
