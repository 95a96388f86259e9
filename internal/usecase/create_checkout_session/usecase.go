package create_checkout_session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	venueRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-QueueSkipService/internal/integrations/checkout"
)

// UseCase use case создания hosted checkout сессии для покупки queue skip
type UseCase struct {
	venueRepo      VenueRepository
	checkoutClient CheckoutClient
	publicBaseURL  string
	currency       string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	checkoutClient CheckoutClient,
	publicBaseURL string,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:      venueRepo,
		checkoutClient: checkoutClient,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		currency:       currency,
		logger:         logger,
	}
}

// Execute выполняет создание checkout-сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckoutSession: venue=%s, email=%s", req.VenueID, req.CustomerEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckoutSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку (название и цена)
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateCheckoutSession: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateCheckoutSession: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Собираем параметры сессии
	productName := fmt.Sprintf("Queue Skip at %s", venue.Name)
	params := &checkout.SessionParams{
		Description:   productName,
		ProductName:   productName,
		ProductDesc:   fmt.Sprintf("Skip the line at %s", venue.Name),
		Currency:      uc.currency,
		UnitAmount:    int64(math.Round(venue.Price * 100)),
		Quantity:      1,
		SuccessURL:    uc.publicBaseURL + "/?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     uc.publicBaseURL + "/" + venue.ID,
		CustomerEmail: req.CustomerEmail,
		Metadata: map[string]string{
			"venueName":    venue.Name,
			"venueId":      venue.ID,
			"customerName": req.CustomerName,
			"customerSex":  req.CustomerSex,
			"receivePromo": strconv.FormatBool(req.ReceivePromo),
		},
	}

	// 4. Создаем сессию у провайдера
	session, err := uc.checkoutClient.CreateSession(ctx, params)
	if err != nil {
		uc.logger.Error("CreateCheckoutSession: provider rejected session for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to create checkout session: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateCheckoutSession: created session id=%s for venue=%s", session.ID, req.VenueID)

	return &Response{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	return nil
}
