package create_venue_config

import "github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"

// UpsertConfigRequest HTTP request model
type UpsertConfigRequest struct {
	DayOfWeek    int    `json:"dayOfWeek"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotsPerHour int    `json:"slots_per_hour"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertConfigRequest) ToServiceRequest(venueID string) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		VenueID:      venueID,
		DayOfWeek:    r.DayOfWeek,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		SlotsPerHour: r.SlotsPerHour,
	}
}
