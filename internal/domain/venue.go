package domain

import "time"

// Venue represents a venue available for queue-skip purchases.
// Venues are managed by an external admin surface; this service only reads them.
type Venue struct {
	ID        string
	Name      string
	ImageURL  string
	Price     float64 // queue-skip price in AUD
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VenueWithConfig is a venue together with its queue-skip availability configuration
type VenueWithConfig struct {
	Venue
	ConfigDays []*QueueSkipConfigDay
}

// HasConfigs returns true if the venue has at least one config day
func (v *VenueWithConfig) HasConfigs() bool {
	return len(v.ConfigDays) > 0
}

// HasActiveConfigs returns true if the venue has at least one active config day
func (v *VenueWithConfig) HasActiveConfigs() bool {
	for _, day := range v.ConfigDays {
		if day.IsActive {
			return true
		}
	}
	return false
}
