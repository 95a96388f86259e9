package process_payment_event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
)

// UseCase use case обработки события платёжного провайдера:
// запись trade log и отправка письма-подтверждения для оплаченных сессий
type UseCase struct {
	tradeLogRepo TradeLogRepository
	mailer       Mailer
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tradeLogRepo TradeLogRepository, mailer Mailer, logger Logger) (*UseCase, error) {
	loc, err := time.LoadLocation(domain.NotificationTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: NewUseCase - load location %s: %v", ErrInternal, domain.NotificationTimezone, err)
	}
	return &UseCase{
		tradeLogRepo: tradeLogRepo,
		mailer:       mailer,
		location:     loc,
		logger:       logger,
	}, nil
}

// Execute выполняет обработку события.
// Лог пишется до валидации timestamp: даже при ошибке формата запись
// остаётся в БД для сверки платежей.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessPaymentEvent: session=%s, venue=%s, status=%s",
		req.SessionID, req.VenueID, req.PaymentStatus)

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProcessPaymentEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. Пишем trade log безусловно. Лог append-only: повторная доставка
	// вебхука дает вторую запись, фиксируем это в логах
	if existing, err := uc.tradeLogRepo.GetBySessionID(ctx, req.SessionID); err == nil && existing != nil {
		uc.logger.Warn("ProcessPaymentEvent: duplicate delivery for session=%s, previous trade log id=%d",
			req.SessionID, existing.ID)
	}

	logged, err := uc.tradeLogRepo.Insert(ctx, req.toDomain())
	if err != nil {
		uc.logger.Error("ProcessPaymentEvent: failed to insert trade log session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to insert trade log: %v", ErrInternal, err)
	}

	// 3. Неоплаченные сессии - только лог, без письма
	if !logged.IsPaid() {
		uc.logger.Info("ProcessPaymentEvent: session=%s status=%s, notification skipped",
			req.SessionID, req.PaymentStatus)
		return &Response{TradeLogID: logged.ID, Status: StatusNotificationSkipped}, nil
	}

	// 4. Парсим timestamp сессии; запись лога уже закоммичена
	sessionTime, err := parseEventTimestamp(req.CreatedAt)
	if err != nil {
		uc.logger.Warn("ProcessPaymentEvent: session=%s has invalid created_at %q, trade log id=%d kept: %v",
			req.SessionID, req.CreatedAt, logged.ID, err)
		return nil, ErrInvalidTimestamp
	}

	// 5. Рендерим дату и время в таймзоне площадки, со сдвигом на час
	bookingDate := renderBookingDate(sessionTime, uc.location)
	entryTime := addDisplayHour(renderBookingTime(sessionTime, uc.location))

	// 6. Отправляем письмо-подтверждение
	subject := buildConfirmationSubject(req.VenueID)
	body := buildConfirmationBody(req.CustomerName, req.VenueID, bookingDate, entryTime)
	if err := uc.mailer.Send(req.CustomerEmail, subject, body); err != nil {
		uc.logger.Error("ProcessPaymentEvent: failed to send confirmation for session=%s to %s: %v",
			req.SessionID, req.CustomerEmail, err)
		return nil, fmt.Errorf("%w: %v", ErrNotificationDispatchFailed, err)
	}

	uc.logger.Info("ProcessPaymentEvent: confirmation sent for session=%s, trade log id=%d",
		req.SessionID, logged.ID)

	return &Response{TradeLogID: logged.ID, Status: StatusNotificationSent}, nil
}

// validateRequest проверяет обязательные поля события
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: session id is required", ErrMalformedPayload)
	}
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venue id is required", ErrMalformedPayload)
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrMalformedPayload)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrMalformedPayload)
	}
	if strings.TrimSpace(req.PaymentStatus) == "" {
		return fmt.Errorf("%w: payment status is required", ErrMalformedPayload)
	}
	return nil
}
