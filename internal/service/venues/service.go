package venues

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	venueRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-QueueSkipService/internal/service/venues/models"
)

// Service сервис чтения заведений с их конфигурацией queue-skip
type Service struct {
	venueRepo  VenueRepository
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса заведений
func NewService(
	venueRepo VenueRepository,
	configRepo ConfigRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:  venueRepo,
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetByID получает заведение вместе с конфигурацией queue-skip
func (s *Service) GetByID(ctx context.Context, venueID string) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%s", venueID)

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%s not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	days, err := s.configRepo.GetDaysByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("GetByID: failed to get configs for venue id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get configs: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched venue id=%s with %d config days", venueID, len(days))
	return models.FromDomainVenue(&domain.VenueWithConfig{
		Venue:      *venue,
		ConfigDays: days,
	}), nil
}

// List получает все заведения с конфигурацией, отсортированные для витрины
//
// Политика сортировки (стабильная, без вторичного ключа):
//  1. заведения хотя бы с одним config day - раньше заведений без конфигурации
//  2. среди них заведения с активной конфигурацией - раньше
//  3. при равенстве сохраняется порядок хранилища
func (s *Service) List(ctx context.Context) (*models.VenueListResponse, error) {
	s.logger.Info("List: fetching all venues")

	venueRows, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	venueIDs := make([]string, 0, len(venueRows))
	for _, v := range venueRows {
		venueIDs = append(venueIDs, v.ID)
	}

	daysByVenue, err := s.configRepo.GetDaysForVenues(ctx, venueIDs)
	if err != nil {
		s.logger.Error("List: failed to get configs: %v", err)
		return nil, fmt.Errorf("%w: List - failed to get configs: %v", ErrInternal, err)
	}

	venues := make([]*domain.VenueWithConfig, 0, len(venueRows))
	for _, v := range venueRows {
		days := daysByVenue[v.ID]
		if days == nil {
			days = []*domain.QueueSkipConfigDay{}
		}
		venues = append(venues, &domain.VenueWithConfig{
			Venue:      *v,
			ConfigDays: days,
		})
	}

	sortVenuesForListing(venues)

	s.logger.Info("List: successfully fetched %d venues", len(venues))
	return models.FromDomainVenueList(venues), nil
}

// sortVenuesForListing сортирует заведения по наличию конфигурации
func sortVenuesForListing(venues []*domain.VenueWithConfig) {
	sort.SliceStable(venues, func(i, j int) bool {
		a, b := venues[i], venues[j]

		if a.HasConfigs() != b.HasConfigs() {
			return a.HasConfigs()
		}

		if a.HasActiveConfigs() != b.HasActiveConfigs() {
			return a.HasActiveConfigs()
		}

		return false
	})
}
