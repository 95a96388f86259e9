package delete_venue_config

import "context"

type ConfigService interface {
	DeleteDay(ctx context.Context, configDayID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
