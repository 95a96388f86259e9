package delete_venue_config

// DeleteConfigResponse HTTP response model: эхо идентификатора удаленного дня
type DeleteConfigResponse struct {
	ConfigDayID int64 `json:"config_day_id"`
}
