package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sessionParams() *SessionParams {
	return &SessionParams{
		Description:   "Queue Skip at Revolver Upstairs",
		ProductName:   "Queue Skip at Revolver Upstairs",
		ProductDesc:   "Skip the line at Revolver Upstairs",
		Currency:      "aud",
		UnitAmount:    2500,
		Quantity:      1,
		SuccessURL:    "https://example.com/?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     "https://example.com/revolver-upstairs",
		CustomerEmail: "alex@example.com",
		Metadata: map[string]string{
			"venueId":      "revolver-upstairs",
			"customerName": "Alex",
		},
	}
}

func TestCreateSession_SendsProviderForm(t *testing.T) {
	var gotReq *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotReq = r

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_123", "url": "https://checkout.example.com/pay/cs_test_123"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_secret", 5*time.Second, nopLogger{})

	session, err := client.CreateSession(context.Background(), sessionParams())

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.example.com/pay/cs_test_123", session.URL)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/v1/checkout/sessions", gotReq.URL.Path)
	assert.Equal(t, "Bearer sk_test_secret", gotReq.Header.Get("Authorization"))
	assert.NotEmpty(t, gotReq.Header.Get("Idempotency-Key"))

	form := gotReq.PostForm
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
	assert.Equal(t, "aud", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "2500", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
	assert.Contains(t, form.Get("success_url"), "{CHECKOUT_SESSION_ID}")
	assert.Equal(t, "alex@example.com", form.Get("customer_email"))
	assert.Equal(t, "revolver-upstairs", form.Get("metadata[venueId]"))
}

func TestCreateSession_RejectedByProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Invalid currency"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_secret", 5*time.Second, nopLogger{})

	_, err := client.CreateSession(context.Background(), sessionParams())

	require.ErrorIs(t, err, ErrSessionRejected)
	assert.Contains(t, err.Error(), "Invalid currency")
}

func TestCreateSession_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_secret", 5*time.Second, nopLogger{})

	_, err := client.CreateSession(context.Background(), sessionParams())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateSession_MissingSessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url": "https://checkout.example.com/pay"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_secret", 5*time.Second, nopLogger{})

	_, err := client.CreateSession(context.Background(), sessionParams())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
