package create_checkout_session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	venueRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-QueueSkipService/internal/integrations/checkout"
)

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ string) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.venue, nil
}

type fakeCheckoutClient struct {
	gotParams *checkout.SessionParams
	session   *checkout.Session
	err       error
}

func (f *fakeCheckoutClient) CreateSession(_ context.Context, params *checkout.SessionParams) (*checkout.Session, error) {
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		VenueID:       "revolver-upstairs",
		CustomerName:  "Alex",
		CustomerEmail: "alex@example.com",
		CustomerSex:   "female",
		ReceivePromo:  true,
	}
}

func TestExecute_BuildsSessionParams(t *testing.T) {
	repo := &fakeVenueRepo{venue: &domain.Venue{
		ID:    "revolver-upstairs",
		Name:  "Revolver Upstairs",
		Price: 24.95,
	}}
	client := &fakeCheckoutClient{session: &checkout.Session{
		ID:  "cs_test_123",
		URL: "https://checkout.example.com/pay/cs_test_123",
	}}
	uc := NewUseCase(repo, client, "https://example.com/", "aud", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "https://checkout.example.com/pay/cs_test_123", resp.URL)

	params := client.gotParams
	require.NotNil(t, params)
	assert.Equal(t, "Queue Skip at Revolver Upstairs", params.ProductName)
	assert.Equal(t, "aud", params.Currency)
	// 24.95 AUD -> 2495 центов, с округлением по математическим правилам
	assert.Equal(t, int64(2495), params.UnitAmount)
	assert.Equal(t, int64(1), params.Quantity)
	// redirect-ссылки ведут на фронтенд: success на витрину с session_id,
	// cancel обратно на страницу заведения
	assert.Equal(t, "https://example.com/?session_id={CHECKOUT_SESSION_ID}", params.SuccessURL)
	assert.Equal(t, "https://example.com/revolver-upstairs", params.CancelURL)
	assert.Equal(t, "alex@example.com", params.CustomerEmail)
	assert.Equal(t, "revolver-upstairs", params.Metadata["venueId"])
	assert.Equal(t, "Alex", params.Metadata["customerName"])
	assert.Equal(t, "true", params.Metadata["receivePromo"])
}

func TestExecute_VenueNotFound(t *testing.T) {
	repo := &fakeVenueRepo{err: venueRepo.ErrVenueNotFound}
	client := &fakeCheckoutClient{}
	uc := NewUseCase(repo, client, "https://example.com", "aud", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrVenueNotFound)
	assert.Nil(t, client.gotParams)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing venue id", mutate: func(r *Request) { r.VenueID = "" }},
		{name: "missing customer name", mutate: func(r *Request) { r.CustomerName = "" }},
		{name: "missing customer email", mutate: func(r *Request) { r.CustomerEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeVenueRepo{}, &fakeCheckoutClient{}, "https://example.com", "aud", nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ProviderFailure(t *testing.T) {
	repo := &fakeVenueRepo{venue: &domain.Venue{ID: "pawn", Name: "Pawn & Co", Price: 30}}
	client := &fakeCheckoutClient{err: errors.New("provider down")}
	uc := NewUseCase(repo, client, "https://example.com", "aud", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
