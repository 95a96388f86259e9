package toggle_config_active

import "context"

type ConfigService interface {
	ToggleActive(ctx context.Context, configDayID int64, isActive bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
