package qsconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	"github.com/m04kA/SMC-QueueSkipService/pkg/dbmetrics"
	"github.com/m04kA/SMC-QueueSkipService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-QueueSkipService/pkg/types"
)

var dayColumns = []string{
	"id",
	"venue_id",
	"day_of_week",
	"slots_per_hour",
	"is_active",
	"created_at",
	"updated_at",
}

var hourColumns = []string{
	"id",
	"config_day_id",
	"start_time",
	"end_time",
	"custom_slots",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации queue-skip (дни + часовые интервалы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// dayByVenueAndWeekdayQuery строит lookup дня по натуральному ключу (venue_id, day_of_week)
// Исторические дубликаты читаются детерминированно: старейшая строка
func dayByVenueAndWeekdayQuery(venueID string, dayOfWeek int) (string, []interface{}, error) {
	return psqlbuilder.Select(dayColumns...).
		From("qs_config_days").
		Where(squirrel.Eq{"venue_id": venueID, "day_of_week": dayOfWeek}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
}

// GetDayByVenueAndWeekday ищет конфигурацию дня по натуральному ключу (venue_id, day_of_week)
// Именно этот lookup заменяет уникальный constraint на уровне хранилища
func (r *Repository) GetDayByVenueAndWeekday(ctx context.Context, venueID string, dayOfWeek int) (*domain.QueueSkipConfigDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := dayByVenueAndWeekdayQuery(venueID, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByVenueAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDayRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByVenueAndWeekday - scan day: %v", ErrScanRow, err)
	}

	return day, nil
}

// CreateDay создает новую конфигурацию дня
func (r *Repository) CreateDay(ctx context.Context, day *domain.QueueSkipConfigDay) (*domain.QueueSkipConfigDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("qs_config_days").
		Columns(
			"venue_id",
			"day_of_week",
			"slots_per_hour",
			"is_active",
		).
		Values(
			day.VenueID,
			day.DayOfWeek,
			day.SlotsPerHour,
			day.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDay - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDay - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return day, nil
}

// UpdateDaySlots обновляет вместимость существующего дня
// Принудительно включает is_active - так задумано: повторный upsert всегда
// активирует день, деактивация выполняется только через SetDayActive
func (r *Repository) UpdateDaySlots(ctx context.Context, id int64, slotsPerHour int) (*domain.QueueSkipConfigDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("qs_config_days").
		Set("slots_per_hour", slotsPerHour).
		Set("is_active", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(dayColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDaySlots - build update query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDayRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDaySlots - execute update: %v", ErrExecQuery, err)
	}

	return day, nil
}

// GetFirstHourByDay возвращает часовой интервал дня
// Предполагается не больше одного интервала на день; если интервалов несколько,
// детерминированно берется самый старый (ORDER BY id LIMIT 1)
func (r *Repository) GetFirstHourByDay(ctx context.Context, configDayID int64) (*domain.QueueSkipConfigHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hourColumns...).
		From("qs_config_hours").
		Where(squirrel.Eq{"config_day_id": configDayID}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstHourByDay - build select query: %v", ErrBuildQuery, err)
	}

	hour, err := r.scanHourRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstHourByDay - scan hour: %v", ErrScanRow, err)
	}

	return hour, nil
}

// CreateHour создает новый часовой интервал
func (r *Repository) CreateHour(ctx context.Context, hour *domain.QueueSkipConfigHour) (*domain.QueueSkipConfigHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("qs_config_hours").
		Columns(
			"config_day_id",
			"start_time",
			"end_time",
			"custom_slots",
			"is_active",
		).
		Values(
			hour.ConfigDayID,
			hour.StartTime,
			hour.EndTime,
			hour.CustomSlots,
			hour.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHour - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hour.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHour - execute insert: %v", ErrExecQuery, err)
	}

	hour.CreatedAt = createdAt.Time
	hour.UpdatedAt = updatedAt.Time

	return hour, nil
}

// UpdateHour перезаписывает границы и вместимость существующего интервала
// Как и UpdateDaySlots, принудительно включает is_active
func (r *Repository) UpdateHour(ctx context.Context, id int64, startTime, endTime types.TimeString, customSlots int) (*domain.QueueSkipConfigHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("qs_config_hours").
		Set("start_time", startTime).
		Set("end_time", endTime).
		Set("custom_slots", customSlots).
		Set("is_active", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(hourColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHour - build update query: %v", ErrBuildQuery, err)
	}

	hour, err := r.scanHourRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHour - execute update: %v", ErrExecQuery, err)
	}

	return hour, nil
}

// DeleteDay удаляет конфигурацию дня
// Часовые интервалы удаляются каскадно на уровне БД (FK ON DELETE CASCADE)
func (r *Repository) DeleteDay(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("qs_config_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDay - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigDayNotFound
	}

	return nil
}

// SetDayActive выставляет только флаг активности дня, не трогая часовые интервалы
func (r *Repository) SetDayActive(ctx context.Context, id int64, isActive bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("qs_config_days").
		Set("is_active", isActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDayActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetDayActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetDayActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigDayNotFound
	}

	return nil
}

// GetDaysByVenue получает все дни заведения вместе с часовыми интервалами
func (r *Repository) GetDaysByVenue(ctx context.Context, venueID string) ([]*domain.QueueSkipConfigDay, error) {
	byVenue, err := r.GetDaysForVenues(ctx, []string{venueID})
	if err != nil {
		return nil, err
	}

	days, ok := byVenue[venueID]
	if !ok {
		return []*domain.QueueSkipConfigDay{}, nil
	}
	return days, nil
}

// GetDaysForVenues получает дни с часовыми интервалами для набора заведений
// Два запроса: дни по venue_id IN (...), затем интервалы по config_day_id IN (...)
func (r *Repository) GetDaysForVenues(ctx context.Context, venueIDs []string) (map[string][]*domain.QueueSkipConfigDay, error) {
	result := make(map[string][]*domain.QueueSkipConfigDay)
	if len(venueIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayColumns...).
		From("qs_config_days").
		Where(squirrel.Eq{"venue_id": venueIDs}).
		OrderBy("venue_id ASC", "day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDaysForVenues - build days query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaysForVenues - execute days query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	daysByID := make(map[int64]*domain.QueueSkipConfigDay)
	dayIDs := make([]int64, 0)

	for rows.Next() {
		day, err := r.scanDayRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDaysForVenues - scan day row: %v", ErrScanRow, err)
		}
		day.Hours = make([]*domain.QueueSkipConfigHour, 0)
		daysByID[day.ID] = day
		dayIDs = append(dayIDs, day.ID)
		result[day.VenueID] = append(result[day.VenueID], day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDaysForVenues - days rows error: %v", ErrScanRow, err)
	}

	if len(dayIDs) == 0 {
		return result, nil
	}

	hours, err := r.getHoursForDays(ctx, executor, dayIDs)
	if err != nil {
		return nil, err
	}

	for _, hour := range hours {
		if hour.ConfigDayID == nil {
			continue
		}
		if day, ok := daysByID[*hour.ConfigDayID]; ok {
			day.Hours = append(day.Hours, hour)
		}
	}

	return result, nil
}

func (r *Repository) getHoursForDays(ctx context.Context, executor DBExecutor, dayIDs []int64) ([]*domain.QueueSkipConfigHour, error) {
	query, args, err := psqlbuilder.Select(hourColumns...).
		From("qs_config_hours").
		Where(squirrel.Eq{"config_day_id": dayIDs}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getHoursForDays - build hours query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getHoursForDays - execute hours query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.QueueSkipConfigHour, 0)

	for rows.Next() {
		hour, err := r.scanHourRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: getHoursForDays - scan hour row: %v", ErrScanRow, err)
		}
		hours = append(hours, hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getHoursForDays - hours rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Сканирование строк

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDayRow(row rowScanner) (*domain.QueueSkipConfigDay, error) {
	var day domain.QueueSkipConfigDay
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&day.ID,
		&day.VenueID,
		&day.DayOfWeek,
		&day.SlotsPerHour,
		&day.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

func (r *Repository) scanDayRows(rows *sql.Rows) (*domain.QueueSkipConfigDay, error) {
	return r.scanDayRow(rows)
}

func (r *Repository) scanHourRow(row rowScanner) (*domain.QueueSkipConfigHour, error) {
	var hour domain.QueueSkipConfigHour
	var configDayID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hour.ID,
		&configDayID,
		&hour.StartTime,
		&hour.EndTime,
		&hour.CustomSlots,
		&hour.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if configDayID.Valid {
		hour.ConfigDayID = &configDayID.Int64
	}
	hour.CreatedAt = createdAt.Time
	hour.UpdatedAt = updatedAt.Time

	return &hour, nil
}

func (r *Repository) scanHourRows(rows *sql.Rows) (*domain.QueueSkipConfigHour, error) {
	return r.scanHourRow(rows)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
