package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	venueRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/venue"
)

type fakeVenueRepo struct {
	venues []*domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id string) (*domain.Venue, error) {
	for _, v := range f.venues {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, venueRepo.ErrVenueNotFound
}

func (f *fakeVenueRepo) List(_ context.Context) ([]*domain.Venue, error) {
	result := make([]*domain.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		copied := *v
		result = append(result, &copied)
	}
	return result, nil
}

type fakeConfigRepo struct {
	daysByVenue map[string][]*domain.QueueSkipConfigDay
}

func (f *fakeConfigRepo) GetDaysByVenue(_ context.Context, venueID string) ([]*domain.QueueSkipConfigDay, error) {
	days := f.daysByVenue[venueID]
	if days == nil {
		return []*domain.QueueSkipConfigDay{}, nil
	}
	return days, nil
}

func (f *fakeConfigRepo) GetDaysForVenues(_ context.Context, venueIDs []string) (map[string][]*domain.QueueSkipConfigDay, error) {
	result := make(map[string][]*domain.QueueSkipConfigDay)
	for _, id := range venueIDs {
		if days, ok := f.daysByVenue[id]; ok {
			result[id] = days
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(venueID string, active bool) *domain.QueueSkipConfigDay {
	return &domain.QueueSkipConfigDay{
		VenueID:      venueID,
		DayOfWeek:    5,
		SlotsPerHour: 10,
		IsActive:     active,
	}
}

func TestGetByID(t *testing.T) {
	vRepo := &fakeVenueRepo{venues: []*domain.Venue{
		{ID: "pawn", Name: "Pawn & Co", Price: 25},
	}}
	cRepo := &fakeConfigRepo{daysByVenue: map[string][]*domain.QueueSkipConfigDay{
		"pawn": {day("pawn", true)},
	}}
	svc := NewService(vRepo, cRepo, nopLogger{})

	venue, err := svc.GetByID(context.Background(), "pawn")

	require.NoError(t, err)
	assert.Equal(t, "pawn", venue.ID)
	assert.Equal(t, "Pawn & Co", venue.Name)
	assert.Len(t, venue.ConfigDays, 1)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeVenueRepo{}, &fakeConfigRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestList_OrdersConfiguredVenuesFirst(t *testing.T) {
	// Порядок хранилища: A (без конфигурации), B (только неактивная), C (активная)
	vRepo := &fakeVenueRepo{venues: []*domain.Venue{
		{ID: "venue-a", Name: "A"},
		{ID: "venue-b", Name: "B"},
		{ID: "venue-c", Name: "C"},
	}}
	cRepo := &fakeConfigRepo{daysByVenue: map[string][]*domain.QueueSkipConfigDay{
		"venue-b": {day("venue-b", false)},
		"venue-c": {day("venue-c", true)},
	}}
	svc := NewService(vRepo, cRepo, nopLogger{})

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Venues, 3)

	// витрина: активная конфигурация раньше неактивной, без конфигурации - в конце
	assert.Equal(t, "venue-c", result.Venues[0].ID)
	assert.Equal(t, "venue-b", result.Venues[1].ID)
	assert.Equal(t, "venue-a", result.Venues[2].ID)
}

func TestList_StableWithinEqualGroups(t *testing.T) {
	vRepo := &fakeVenueRepo{venues: []*domain.Venue{
		{ID: "venue-a", Name: "A"},
		{ID: "venue-b", Name: "B"},
		{ID: "venue-c", Name: "C"},
	}}
	cRepo := &fakeConfigRepo{daysByVenue: map[string][]*domain.QueueSkipConfigDay{
		"venue-a": {day("venue-a", true)},
		"venue-b": {day("venue-b", true)},
		"venue-c": {day("venue-c", true)},
	}}
	svc := NewService(vRepo, cRepo, nopLogger{})

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Venues, 3)

	// при равных признаках сохраняется порядок хранилища
	assert.Equal(t, "venue-a", result.Venues[0].ID)
	assert.Equal(t, "venue-b", result.Venues[1].ID)
	assert.Equal(t, "venue-c", result.Venues[2].ID)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&fakeVenueRepo{}, &fakeConfigRepo{}, nopLogger{})

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Venues)
}
