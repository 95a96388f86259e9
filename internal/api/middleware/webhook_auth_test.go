package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func protectedHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestWebhookAuth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{name: "valid token", token: "secret", header: "secret", wantStatus: http.StatusOK, wantCalled: true},
		{name: "wrong token", token: "secret", header: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "missing header", token: "secret", header: "", wantStatus: http.StatusUnauthorized},
		{name: "check disabled", token: "", header: "", wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := WebhookAuth(tt.token, nopLogger{})(protectedHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payments", nil)
			if tt.header != "" {
				req.Header.Set("X-Webhook-Token", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
