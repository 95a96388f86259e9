package models

import (
	"time"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
)

// Request модели

// UpsertConfigRequest запрос на установку конфигурации одного дня
// Вызывающая сторона передает полное желаемое состояние, а не дельту
type UpsertConfigRequest struct {
	VenueID      string `json:"venueId"`
	DayOfWeek    int    `json:"dayOfWeek"` // 0 = воскресенье .. 6 = суббота
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotsPerHour int    `json:"slots_per_hour"`
}

// BatchEntry одна запись пакетного upsert-а
type BatchEntry struct {
	DayOfWeek    int    `json:"dayOfWeek"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotsPerHour int    `json:"slots_per_hour"`
}

// Response модели

// UpsertConfigResult идентификаторы затронутых строк
type UpsertConfigResult struct {
	ConfigDayID  int64 `json:"config_day_id"`
	ConfigHourID int64 `json:"config_hour_id"`
}

// ConfigHourResponse ответ с данными часового интервала
type ConfigHourResponse struct {
	ID          int64     `json:"id"`
	ConfigDayID *int64    `json:"config_day_id,omitempty"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CustomSlots int       `json:"custom_slots"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConfigDayResponse ответ с данными конфигурации дня
type ConfigDayResponse struct {
	ID           int64                `json:"id"`
	VenueID      string               `json:"venue_id"`
	DayOfWeek    int                  `json:"day_of_week"`
	SlotsPerHour int                  `json:"slots_per_hour"`
	IsActive     bool                 `json:"is_active"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Hours        []ConfigHourResponse `json:"qs_config_hours"`
}

// ConfigListResponse ответ со списком конфигураций дней заведения
type ConfigListResponse struct {
	Configs []ConfigDayResponse `json:"configs"`
}

// Методы конвертации

// FromDomainHour конвертирует domain модель интервала в DTO
func FromDomainHour(h *domain.QueueSkipConfigHour) ConfigHourResponse {
	return ConfigHourResponse{
		ID:          h.ID,
		ConfigDayID: h.ConfigDayID,
		StartTime:   h.StartTime.String(),
		EndTime:     h.EndTime.String(),
		CustomSlots: h.CustomSlots,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// FromDomainDay конвертирует domain модель дня в DTO
func FromDomainDay(d *domain.QueueSkipConfigDay) ConfigDayResponse {
	hours := make([]ConfigHourResponse, 0, len(d.Hours))
	for _, h := range d.Hours {
		hours = append(hours, FromDomainHour(h))
	}

	return ConfigDayResponse{
		ID:           d.ID,
		VenueID:      d.VenueID,
		DayOfWeek:    d.DayOfWeek,
		SlotsPerHour: d.SlotsPerHour,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Hours:        hours,
	}
}

// FromDomainDayList конвертирует список domain моделей в DTO
func FromDomainDayList(days []*domain.QueueSkipConfigDay) *ConfigListResponse {
	resp := &ConfigListResponse{
		Configs: make([]ConfigDayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Configs = append(resp.Configs, FromDomainDay(d))
	}
	return resp
}
