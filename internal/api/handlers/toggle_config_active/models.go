package toggle_config_active

// ToggleActiveRequest HTTP request model
type ToggleActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// ToggleActiveResponse HTTP response model
type ToggleActiveResponse struct {
	ConfigDayID int64 `json:"config_day_id"`
	IsActive    bool  `json:"is_active"`
}
