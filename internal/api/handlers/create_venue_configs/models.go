package create_venue_configs

import "github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"

// BatchUpsertRequest HTTP request model
type BatchUpsertRequest struct {
	Configs []models.BatchEntry `json:"configs"`
}

// BatchUpsertResponse HTTP response model
type BatchUpsertResponse struct {
	Results []models.UpsertConfigResult `json:"results"`
}
