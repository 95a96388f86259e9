package domain

// Day-of-week bounds (0 = Sunday .. 6 = Saturday)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// Business validation constants
const (
	MinSlotsPerHour = 1
	MaxSlotsPerHour = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// EmailDateFormat is the long date form used in confirmation emails ("16 June 2025")
	EmailDateFormat = "2 January 2006"
)

// NotificationTimezone is the fixed timezone confirmation emails are rendered in
const NotificationTimezone = "Australia/Melbourne"
