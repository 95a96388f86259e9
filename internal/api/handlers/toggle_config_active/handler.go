package toggle_config_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig"
)

const (
	msgInvalidConfigDayID = "invalid config day id"
	msgInvalidRequestBody = "invalid request body"
	msgConfigNotFound     = "config not found"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/queue-skip-configs/{configDayId}/active
// Меняет только флаг дня; часовые интервалы сохраняют свои флаги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	configDayIDStr := vars["configDayId"]

	configDayID, err := strconv.ParseInt(configDayIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /queue-skip-configs/{id}/active - Invalid config day ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfigDayID)
		return
	}

	var req ToggleActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /queue-skip-configs/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ToggleActive(r.Context(), configDayID, req.IsActive); err != nil {
		switch {
		case errors.Is(err, qsconfig.ErrConfigNotFound):
			h.logger.Warn("PATCH /queue-skip-configs/{id}/active - Config not found: config_day_id=%d", configDayID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("PATCH /queue-skip-configs/{id}/active - Failed to toggle config: config_day_id=%d, error=%v",
				configDayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /queue-skip-configs/{id}/active - Config toggled: config_day_id=%d, is_active=%t",
		configDayID, req.IsActive)
	handlers.RespondJSON(w, http.StatusOK, &ToggleActiveResponse{
		ConfigDayID: configDayID,
		IsActive:    req.IsActive,
	})
}
