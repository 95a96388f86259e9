package models

import (
	"time"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	qsmodels "github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"
)

// VenueResponse ответ с данными заведения и его конфигурацией queue-skip
type VenueResponse struct {
	ID         string                       `json:"id"`
	Name       string                       `json:"name"`
	ImageURL   string                       `json:"image_url"`
	Price      float64                      `json:"price"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
	ConfigDays []qsmodels.ConfigDayResponse `json:"qs_config_days"`
}

// VenueListResponse ответ со списком заведений
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.VenueWithConfig) *VenueResponse {
	if v == nil {
		return nil
	}

	days := make([]qsmodels.ConfigDayResponse, 0, len(v.ConfigDays))
	for _, day := range v.ConfigDays {
		days = append(days, qsmodels.FromDomainDay(day))
	}

	return &VenueResponse{
		ID:         v.ID,
		Name:       v.Name,
		ImageURL:   v.ImageURL,
		Price:      v.Price,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		ConfigDays: days,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.VenueWithConfig) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}
	for _, v := range venues {
		if vr := FromDomainVenue(v); vr != nil {
			resp.Venues = append(resp.Venues, *vr)
		}
	}
	return resp
}
