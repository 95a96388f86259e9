package qsconfig

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	"github.com/m04kA/SMC-QueueSkipService/pkg/types"
)

// ConfigRepository интерфейс репозитория конфигурации queue-skip
type ConfigRepository interface {
	GetDayByVenueAndWeekday(ctx context.Context, venueID string, dayOfWeek int) (*domain.QueueSkipConfigDay, error)
	CreateDay(ctx context.Context, day *domain.QueueSkipConfigDay) (*domain.QueueSkipConfigDay, error)
	UpdateDaySlots(ctx context.Context, id int64, slotsPerHour int) (*domain.QueueSkipConfigDay, error)
	GetFirstHourByDay(ctx context.Context, configDayID int64) (*domain.QueueSkipConfigHour, error)
	CreateHour(ctx context.Context, hour *domain.QueueSkipConfigHour) (*domain.QueueSkipConfigHour, error)
	UpdateHour(ctx context.Context, id int64, startTime, endTime types.TimeString, customSlots int) (*domain.QueueSkipConfigHour, error)
	DeleteDay(ctx context.Context, id int64) error
	SetDayActive(ctx context.Context, id int64, isActive bool) error
	GetDaysByVenue(ctx context.Context, venueID string) ([]*domain.QueueSkipConfigDay, error)
}

// TransactionManager интерфейс для управления транзакциями
// Do группирует парную запись день+час одного upsert-вызова;
// между записями batch-а транзакций нет
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
