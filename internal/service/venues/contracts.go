package venues

import (
	"context"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
)

// VenueRepository интерфейс репозитория заведений
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

// ConfigRepository интерфейс репозитория конфигурации queue-skip
type ConfigRepository interface {
	GetDaysByVenue(ctx context.Context, venueID string) ([]*domain.QueueSkipConfigDay, error)
	GetDaysForVenues(ctx context.Context, venueIDs []string) (map[string][]*domain.QueueSkipConfigDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
