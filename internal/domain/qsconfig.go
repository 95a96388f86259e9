package domain

import (
	"time"

	"github.com/m04kA/SMC-QueueSkipService/pkg/types"
)

// QueueSkipConfigDay represents the queue-skip availability rules for one venue
// on one day of the week (0 = Sunday .. 6 = Saturday).
// At most one config day is expected per (venue, day_of_week) pair; this is
// enforced by an existence check before insert, not by a storage constraint.
type QueueSkipConfigDay struct {
	ID           int64
	VenueID      string
	DayOfWeek    int
	SlotsPerHour int // default capacity per hour
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Hours []*QueueSkipConfigHour
}

// QueueSkipConfigHour represents a time-range override within a config day.
// ConfigDayID is optional: orphaned hour rows are representable but not expected.
type QueueSkipConfigHour struct {
	ID          int64
	ConfigDayID *int64
	StartTime   types.TimeString
	EndTime     types.TimeString
	CustomSlots int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
