package qsconfig

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	configRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/qsconfig"
	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"
	"github.com/m04kA/SMC-QueueSkipService/pkg/ptr"
	"github.com/m04kA/SMC-QueueSkipService/pkg/types"
)

// Service сервис конфигурации queue-skip доступности
type Service struct {
	configRepo ConfigRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByVenue получает все дни конфигурации заведения с часовыми интервалами
// Для заведения без конфигурации возвращает пустой список, а не ошибку
func (s *Service) GetByVenue(ctx context.Context, venueID string) (*models.ConfigListResponse, error) {
	s.logger.Info("GetByVenue: fetching configs for venue=%s", venueID)

	days, err := s.configRepo.GetDaysByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("GetByVenue: repository error for venue=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByVenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByVenue: successfully fetched %d config days for venue=%s", len(days), venueID)
	return models.FromDomainDayList(days), nil
}

// UpsertDayAndHour устанавливает конфигурацию одного дня (insert-or-update)
//
// Алгоритм:
//  1. Ищем существующий день по (venueId, dayOfWeek); нашли - обновляем
//     slots_per_hour и принудительно включаем, не нашли - создаем
//  2. По id дня ищем существующий часовой интервал; нашли - перезаписываем
//     границы/вместимость и принудительно включаем, не нашли - создаем
//
// Обе записи одного вызова группируются в транзакцию, чтобы сбой на шаге 2
// не оставлял свежесозданный день без интервала
func (s *Service) UpsertDayAndHour(ctx context.Context, req *models.UpsertConfigRequest) (*models.UpsertConfigResult, error) {
	s.logger.Info("UpsertDayAndHour: venue=%s, day=%d, slots=%d, range=%s-%s",
		req.VenueID, req.DayOfWeek, req.SlotsPerHour, req.StartTime, req.EndTime)

	startTime, endTime, err := s.validateUpsertRequest(req.VenueID, req.DayOfWeek, req.StartTime, req.EndTime, req.SlotsPerHour)
	if err != nil {
		s.logger.Warn("UpsertDayAndHour: validation failed: %v", err)
		return nil, err
	}

	var result *models.UpsertConfigResult

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		upserted, err := s.upsertEntry(txCtx, req.VenueID, req.DayOfWeek, startTime, endTime, req.SlotsPerHour)
		if err != nil {
			return err
		}
		result = upserted
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpsertDayAndHour: successfully upserted day=%d, hour=%d",
		result.ConfigDayID, result.ConfigHourID)
	return result, nil
}

// BatchUpsert применяет UpsertDayAndHour к каждой записи независимо и конкурентно
// Атомарности между записями НЕТ: при сбое одной записи уже закоммиченные
// остаются, а еще не стартовавшие отменяются через контекст группы
func (s *Service) BatchUpsert(ctx context.Context, venueID string, entries []models.BatchEntry) ([]models.UpsertConfigResult, error) {
	s.logger.Info("BatchUpsert: venue=%s, entries=%d", venueID, len(entries))

	if len(entries) == 0 {
		return []models.UpsertConfigResult{}, nil
	}

	// Валидируем все записи до запуска, чтобы заведомо некорректный batch
	// не оставлял частичных результатов
	type validated struct {
		dayOfWeek    int
		startTime    types.TimeString
		endTime      types.TimeString
		slotsPerHour int
	}

	prepared := make([]validated, len(entries))
	for i, entry := range entries {
		startTime, endTime, err := s.validateUpsertRequest(venueID, entry.DayOfWeek, entry.StartTime, entry.EndTime, entry.SlotsPerHour)
		if err != nil {
			s.logger.Warn("BatchUpsert: validation failed for entry %d: %v", i, err)
			return nil, err
		}
		prepared[i] = validated{entry.DayOfWeek, startTime, endTime, entry.SlotsPerHour}
	}

	results := make([]models.UpsertConfigResult, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range prepared {
		i, entry := i, entry
		g.Go(func() error {
			var result *models.UpsertConfigResult

			err := s.txManager.Do(gctx, func(txCtx context.Context) error {
				upserted, err := s.upsertEntry(txCtx, venueID, entry.dayOfWeek, entry.startTime, entry.endTime, entry.slotsPerHour)
				if err != nil {
					return err
				}
				result = upserted
				return nil
			})
			if err != nil {
				return err
			}

			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("BatchUpsert: venue=%s failed: %v", venueID, err)
		return nil, err
	}

	s.logger.Info("BatchUpsert: successfully upserted %d entries for venue=%s", len(results), venueID)
	return results, nil
}

// DeleteDay удаляет конфигурацию дня (интервалы каскадно удаляет хранилище)
func (s *Service) DeleteDay(ctx context.Context, configDayID int64) error {
	s.logger.Info("DeleteDay: deleting config day id=%d", configDayID)

	if err := s.configRepo.DeleteDay(ctx, configDayID); err != nil {
		if errors.Is(err, configRepo.ErrConfigDayNotFound) {
			s.logger.Warn("DeleteDay: config day id=%d not found", configDayID)
			return ErrConfigNotFound
		}
		s.logger.Error("DeleteDay: repository error for id=%d: %v", configDayID, err)
		return fmt.Errorf("%w: DeleteDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDay: successfully deleted config day id=%d", configDayID)
	return nil
}

// ToggleActive выставляет только флаг активности дня, часовые интервалы не трогает
func (s *Service) ToggleActive(ctx context.Context, configDayID int64, isActive bool) error {
	s.logger.Info("ToggleActive: config day id=%d, active=%t", configDayID, isActive)

	if err := s.configRepo.SetDayActive(ctx, configDayID, isActive); err != nil {
		if errors.Is(err, configRepo.ErrConfigDayNotFound) {
			s.logger.Warn("ToggleActive: config day id=%d not found", configDayID)
			return ErrConfigNotFound
		}
		s.logger.Error("ToggleActive: repository error for id=%d: %v", configDayID, err)
		return fmt.Errorf("%w: ToggleActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleActive: successfully set config day id=%d active=%t", configDayID, isActive)
	return nil
}

// upsertEntry выполняет insert-or-update пары день+час для одной записи
func (s *Service) upsertEntry(
	ctx context.Context,
	venueID string,
	dayOfWeek int,
	startTime, endTime types.TimeString,
	slotsPerHour int,
) (*models.UpsertConfigResult, error) {
	// Шаг 1: день
	var configDayID int64

	existingDay, err := s.configRepo.GetDayByVenueAndWeekday(ctx, venueID, dayOfWeek)
	switch {
	case err == nil:
		updated, err := s.configRepo.UpdateDaySlots(ctx, existingDay.ID, slotsPerHour)
		if err != nil {
			return nil, fmt.Errorf("%w: upsertEntry - update day: %v", ErrInternal, err)
		}
		configDayID = updated.ID

	case errors.Is(err, configRepo.ErrConfigDayNotFound):
		created, err := s.configRepo.CreateDay(ctx, &domain.QueueSkipConfigDay{
			VenueID:      venueID,
			DayOfWeek:    dayOfWeek,
			SlotsPerHour: slotsPerHour,
			IsActive:     true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: upsertEntry - create day: %v", ErrInternal, err)
		}
		configDayID = created.ID

	default:
		return nil, fmt.Errorf("%w: upsertEntry - lookup day: %v", ErrInternal, err)
	}

	// Шаг 2: часовой интервал
	var configHourID int64

	existingHour, err := s.configRepo.GetFirstHourByDay(ctx, configDayID)
	switch {
	case err == nil:
		updated, err := s.configRepo.UpdateHour(ctx, existingHour.ID, startTime, endTime, slotsPerHour)
		if err != nil {
			return nil, fmt.Errorf("%w: upsertEntry - update hour: %v", ErrInternal, err)
		}
		configHourID = updated.ID

	case errors.Is(err, configRepo.ErrConfigHourNotFound):
		created, err := s.configRepo.CreateHour(ctx, &domain.QueueSkipConfigHour{
			ConfigDayID: ptr.Ptr(configDayID),
			StartTime:   startTime,
			EndTime:     endTime,
			CustomSlots: slotsPerHour,
			IsActive:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: upsertEntry - create hour: %v", ErrInternal, err)
		}
		configHourID = created.ID

	default:
		return nil, fmt.Errorf("%w: upsertEntry - lookup hour: %v", ErrInternal, err)
	}

	return &models.UpsertConfigResult{
		ConfigDayID:  configDayID,
		ConfigHourID: configHourID,
	}, nil
}

// validateUpsertRequest валидирует параметры upsert-а и парсит границы интервала
func (s *Service) validateUpsertRequest(venueID string, dayOfWeek int, startTime, endTime string, slotsPerHour int) (types.TimeString, types.TimeString, error) {
	if venueID == "" {
		return "", "", fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}

	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return "", "", fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	if slotsPerHour < domain.MinSlotsPerHour || slotsPerHour > domain.MaxSlotsPerHour {
		return "", "", fmt.Errorf("%w: slots_per_hour must be between %d and %d",
			ErrInvalidInput, domain.MinSlotsPerHour, domain.MaxSlotsPerHour)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end_time: %v", ErrInvalidInput, err)
	}

	return start, end, nil
}
