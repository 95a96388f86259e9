package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-QueueSkipService/internal/api/handlers"
)

const webhookTokenHeader = "X-Webhook-Token"

const msgInvalidWebhookToken = "invalid webhook token"

type Logger interface {
	Warn(format string, v ...interface{})
}

// WebhookAuth проверяет shared-secret токен вебхука.
// При пустом настроенном токене проверка отключена.
func WebhookAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(webhookTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Invalid webhook token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidWebhookToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
