package tradelog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	"github.com/m04kA/SMC-QueueSkipService/pkg/dbmetrics"
	"github.com/m04kA/SMC-QueueSkipService/pkg/psqlbuilder"
)

// Repository append-only репозиторий лога транзакций
// Записи создаются один раз на доставку webhook и никогда не изменяются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лога транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет запись лога транзакции
func (r *Repository) Insert(ctx context.Context, log *domain.TradeLog) (*domain.TradeLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trade_logs").
		Columns(
			"session_id",
			"venue_id",
			"customer_email",
			"customer_name",
			"payment_status",
			"amount_total",
			"created_at",
		).
		Values(
			log.SessionID,
			log.VenueID,
			log.CustomerEmail,
			log.CustomerName,
			log.PaymentStatus,
			log.AmountTotal,
			log.CreatedAt,
		).
		Suffix("RETURNING id, logged_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var loggedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&log.ID,
		&loggedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	log.LoggedAt = loggedAt.Time

	return log, nil
}

// GetBySessionID получает запись по идентификатору checkout-сессии
// Используется для сверки после частичных сбоев пайплайна уведомлений
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.TradeLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"session_id",
		"venue_id",
		"customer_email",
		"customer_name",
		"payment_status",
		"amount_total",
		"created_at",
		"logged_at",
	).
		From("trade_logs").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	var log domain.TradeLog
	var loggedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&log.ID,
		&log.SessionID,
		&log.VenueID,
		&log.CustomerEmail,
		&log.CustomerName,
		&log.PaymentStatus,
		&log.AmountTotal,
		&log.CreatedAt,
		&loggedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTradeLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - scan trade log: %v", ErrScanRow, err)
	}

	log.LoggedAt = loggedAt.Time

	return &log, nil
}
