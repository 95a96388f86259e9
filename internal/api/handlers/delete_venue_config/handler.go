package delete_venue_config

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

// Handle DELETE /api/v1/queue-skip-configs/{configDayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	configDayIDStr := vars["configDayId"]

	configDayID, err := strconv.ParseInt(configDayIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /queue-skip-configs/{id} - Invalid config day ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfigDayID)
		return
	}

	if err := h.service.DeleteDay(r.Context(), configDayID); err != nil {
		switch {
		case errors.Is(err, qsconfig.ErrConfigNotFound):
			h.logger.Warn("DELETE /queue-skip-configs/{id} - Config not found: config_day_id=%d", configDayID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("DELETE /queue-skip-configs/{id} - Failed to delete config: config_day_id=%d, error=%v",
				configDayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /queue-skip-configs/{id} - Config deleted: config_day_id=%d", configDayID)
	handlers.RespondJSON(w, http.StatusOK, &DeleteConfigResponse{ConfigDayID: configDayID})
}
