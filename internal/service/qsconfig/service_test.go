package qsconfig

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
	configRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/qsconfig"
	"github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig/models"
	"github.com/m04kA/SMC-QueueSkipService/pkg/types"
)

// fakeConfigRepo in-memory реализация ConfigRepository с семантикой хранилища:
// update-методы принудительно включают запись
type fakeConfigRepo struct {
	mu     sync.Mutex
	days   map[int64]*domain.QueueSkipConfigDay
	hours  map[int64]*domain.QueueSkipConfigHour
	nextID int64
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{
		days:  make(map[int64]*domain.QueueSkipConfigDay),
		hours: make(map[int64]*domain.QueueSkipConfigHour),
	}
}

func (f *fakeConfigRepo) GetDayByVenueAndWeekday(_ context.Context, venueID string, dayOfWeek int) (*domain.QueueSkipConfigDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.days {
		if d.VenueID == venueID && d.DayOfWeek == dayOfWeek {
			copied := *d
			return &copied, nil
		}
	}
	return nil, configRepo.ErrConfigDayNotFound
}

func (f *fakeConfigRepo) CreateDay(_ context.Context, day *domain.QueueSkipConfigDay) (*domain.QueueSkipConfigDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	day.ID = f.nextID
	copied := *day
	f.days[day.ID] = &copied
	return day, nil
}

func (f *fakeConfigRepo) UpdateDaySlots(_ context.Context, id int64, slotsPerHour int) (*domain.QueueSkipConfigDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.days[id]
	if !ok {
		return nil, configRepo.ErrConfigDayNotFound
	}
	day.SlotsPerHour = slotsPerHour
	day.IsActive = true
	copied := *day
	return &copied, nil
}

func (f *fakeConfigRepo) GetFirstHourByDay(_ context.Context, configDayID int64) (*domain.QueueSkipConfigHour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var first *domain.QueueSkipConfigHour
	for _, h := range f.hours {
		if h.ConfigDayID != nil && *h.ConfigDayID == configDayID {
			if first == nil || h.ID < first.ID {
				first = h
			}
		}
	}
	if first == nil {
		return nil, configRepo.ErrConfigHourNotFound
	}
	copied := *first
	return &copied, nil
}

func (f *fakeConfigRepo) CreateHour(_ context.Context, hour *domain.QueueSkipConfigHour) (*domain.QueueSkipConfigHour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	hour.ID = f.nextID
	copied := *hour
	f.hours[hour.ID] = &copied
	return hour, nil
}

func (f *fakeConfigRepo) UpdateHour(_ context.Context, id int64, startTime, endTime types.TimeString, customSlots int) (*domain.QueueSkipConfigHour, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hour, ok := f.hours[id]
	if !ok {
		return nil, configRepo.ErrConfigHourNotFound
	}
	hour.StartTime = startTime
	hour.EndTime = endTime
	hour.CustomSlots = customSlots
	hour.IsActive = true
	copied := *hour
	return &copied, nil
}

func (f *fakeConfigRepo) DeleteDay(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.days[id]; !ok {
		return configRepo.ErrConfigDayNotFound
	}
	delete(f.days, id)
	for hid, h := range f.hours {
		if h.ConfigDayID != nil && *h.ConfigDayID == id {
			delete(f.hours, hid)
		}
	}
	return nil
}

func (f *fakeConfigRepo) SetDayActive(_ context.Context, id int64, isActive bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.days[id]
	if !ok {
		return configRepo.ErrConfigDayNotFound
	}
	day.IsActive = isActive
	return nil
}

func (f *fakeConfigRepo) GetDaysByVenue(_ context.Context, venueID string) ([]*domain.QueueSkipConfigDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*domain.QueueSkipConfigDay, 0)
	for _, d := range f.days {
		if d.VenueID != venueID {
			continue
		}
		copied := *d
		copied.Hours = nil
		for _, h := range f.hours {
			if h.ConfigDayID != nil && *h.ConfigDayID == d.ID {
				hc := *h
				copied.Hours = append(copied.Hours, &hc)
			}
		}
		result = append(result, &copied)
	}
	return result, nil
}

// passthroughTxManager выполняет fn без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeConfigRepo) {
	repo := newFakeConfigRepo()
	return NewService(repo, passthroughTxManager{}, nopLogger{}), repo
}

func validRequest() *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		VenueID:      "revolver-upstairs",
		DayOfWeek:    5,
		StartTime:    "21:00",
		EndTime:      "23:00",
		SlotsPerHour: 10,
	}
}

func TestUpsertDayAndHour_CreatesDayAndHour(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.UpsertDayAndHour(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, result.ConfigDayID)
	assert.NotZero(t, result.ConfigHourID)

	days, err := repo.GetDaysByVenue(context.Background(), "revolver-upstairs")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, days[0].IsActive)
	require.Len(t, days[0].Hours, 1)
	assert.Equal(t, types.TimeString("21:00"), days[0].Hours[0].StartTime)
	assert.Equal(t, 10, days[0].Hours[0].CustomSlots)
}

func TestUpsertDayAndHour_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.UpsertDayAndHour(ctx, validRequest())
	require.NoError(t, err)

	// повторный вызов с новыми значениями обновляет те же строки
	req := validRequest()
	req.StartTime = "20:00"
	req.SlotsPerHour = 25

	second, err := svc.UpsertDayAndHour(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ConfigDayID, second.ConfigDayID)
	assert.Equal(t, first.ConfigHourID, second.ConfigHourID)

	configs, err := svc.GetByVenue(ctx, "revolver-upstairs")
	require.NoError(t, err)
	require.Len(t, configs.Configs, 1)
	assert.Equal(t, 25, configs.Configs[0].SlotsPerHour)
	assert.Equal(t, "20:00", configs.Configs[0].Hours[0].StartTime)
}

func TestUpsertDayAndHour_ReactivatesDisabledDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.UpsertDayAndHour(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ToggleActive(ctx, first.ConfigDayID, false))

	_, err = svc.UpsertDayAndHour(ctx, validRequest())
	require.NoError(t, err)

	configs, err := svc.GetByVenue(ctx, "revolver-upstairs")
	require.NoError(t, err)
	require.Len(t, configs.Configs, 1)
	assert.True(t, configs.Configs[0].IsActive, "upsert must re-enable a disabled day")
}

func TestUpsertDayAndHour_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpsertConfigRequest)
	}{
		{name: "empty venue", mutate: func(r *models.UpsertConfigRequest) { r.VenueID = "" }},
		{name: "day below range", mutate: func(r *models.UpsertConfigRequest) { r.DayOfWeek = -1 }},
		{name: "day above range", mutate: func(r *models.UpsertConfigRequest) { r.DayOfWeek = 7 }},
		{name: "zero slots", mutate: func(r *models.UpsertConfigRequest) { r.SlotsPerHour = 0 }},
		{name: "too many slots", mutate: func(r *models.UpsertConfigRequest) { r.SlotsPerHour = 1001 }},
		{name: "bad start time", mutate: func(r *models.UpsertConfigRequest) { r.StartTime = "25:00" }},
		{name: "bad end time", mutate: func(r *models.UpsertConfigRequest) { r.EndTime = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			req := validRequest()
			tt.mutate(req)

			_, err := svc.UpsertDayAndHour(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
			days, _ := repo.GetDaysByVenue(context.Background(), req.VenueID)
			assert.Empty(t, days)
		})
	}
}

func TestBatchUpsert_AppliesAllEntries(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	entries := []models.BatchEntry{
		{DayOfWeek: 4, StartTime: "20:00", EndTime: "22:00", SlotsPerHour: 5},
		{DayOfWeek: 5, StartTime: "21:00", EndTime: "23:00", SlotsPerHour: 10},
		{DayOfWeek: 6, StartTime: "22:00", EndTime: "23:30", SlotsPerHour: 15},
	}

	results, err := svc.BatchUpsert(ctx, "ms-collins", entries)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.NotZero(t, r.ConfigDayID)
		assert.NotZero(t, r.ConfigHourID)
	}

	configs, err := svc.GetByVenue(ctx, "ms-collins")
	require.NoError(t, err)
	assert.Len(t, configs.Configs, 3)
}

func TestBatchUpsert_InvalidEntryRejectedBeforeAnyWrite(t *testing.T) {
	svc, repo := newTestService()

	entries := []models.BatchEntry{
		{DayOfWeek: 4, StartTime: "20:00", EndTime: "22:00", SlotsPerHour: 5},
		{DayOfWeek: 9, StartTime: "21:00", EndTime: "23:00", SlotsPerHour: 10},
	}

	_, err := svc.BatchUpsert(context.Background(), "ms-collins", entries)

	require.ErrorIs(t, err, ErrInvalidInput)
	days, _ := repo.GetDaysByVenue(context.Background(), "ms-collins")
	assert.Empty(t, days, "validation must reject the batch before any write")
}

func TestBatchUpsert_EmptyBatch(t *testing.T) {
	svc, _ := newTestService()

	results, err := svc.BatchUpsert(context.Background(), "ms-collins", nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDeleteDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.UpsertDayAndHour(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDay(ctx, created.ConfigDayID))

	configs, err := svc.GetByVenue(ctx, "revolver-upstairs")
	require.NoError(t, err)
	assert.Empty(t, configs.Configs)

	// повторное удаление - not found
	assert.ErrorIs(t, svc.DeleteDay(ctx, created.ConfigDayID), ErrConfigNotFound)
}

func TestToggleActive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.UpsertDayAndHour(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ToggleActive(ctx, created.ConfigDayID, false))

	configs, err := svc.GetByVenue(ctx, "revolver-upstairs")
	require.NoError(t, err)
	require.Len(t, configs.Configs, 1)
	assert.False(t, configs.Configs[0].IsActive)
	// часовой интервал сохраняет свой флаг
	require.Len(t, configs.Configs[0].Hours, 1)
	assert.True(t, configs.Configs[0].Hours[0].IsActive)

	assert.ErrorIs(t, svc.ToggleActive(ctx, 9999, true), ErrConfigNotFound)
}

func TestGetByVenue_EmptyIsNotAnError(t *testing.T) {
	svc, _ := newTestService()

	configs, err := svc.GetByVenue(context.Background(), "unknown-venue")

	require.NoError(t, err)
	assert.NotNil(t, configs)
	assert.Empty(t, configs.Configs)
}
