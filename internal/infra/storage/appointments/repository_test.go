package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
	"github.com/kmlvv/BSM-SalonService/pkg/ptr"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// fakeStore in-memory хранилище снапшотов с переключаемым отказом записи
type fakeStore struct {
	data     map[string][]byte
	failSave bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (s *fakeStore) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, snapshot.ErrKeyNotFound
	}
	return data, nil
}

func (s *fakeStore) Save(_ context.Context, key string, data []byte) error {
	if s.failSave {
		return snapshot.ErrSave
	}
	s.data[key] = data
	return nil
}

func newTestRepository(t *testing.T, store snapshot.Store) *Repository {
	t.Helper()
	repo, err := NewRepository(context.Background(), store)
	require.NoError(t, err)

	// Монотонные таймстемпы, чтобы id не совпадали в пределах теста
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	step := 0
	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Millisecond)
	}
	return repo
}

func TestRepository_CreateAssignsDefaults(t *testing.T) {
	repo := newTestRepository(t, newFakeStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Appointment{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		Price:      1500,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusScheduled, created.Status)
	assert.False(t, created.FinanceRecorded)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestRepository_FailedSaveLeavesMemoryUntouched(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(t, store)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Appointment{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:00",
	})
	require.NoError(t, err)

	// Хранилище отказывает: мутации не должны коммититься в память
	store.failSave = true

	_, err = repo.Create(ctx, &domain.Appointment{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "11:00",
	})
	require.Error(t, err)

	updated := *created
	updated.Status = domain.StatusConfirmed
	_, err = repo.Update(ctx, &updated)
	require.Error(t, err)

	err = repo.Delete(ctx, created.ID)
	require.Error(t, err)

	// В памяти ровно одна запись в исходном состоянии
	items := repo.List(ctx, domain.AppointmentsFilter{})
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, domain.StatusScheduled, items[0].Status)
}

func TestRepository_ListFilters(t *testing.T) {
	repo := newTestRepository(t, newFakeStore())
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Appointment{ProviderID: "anna", Date: "2026-09-01", StartTime: "11:00"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Appointment{ProviderID: "maria", Date: "2026-09-01", StartTime: "10:00"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Appointment{ProviderID: "anna", Date: "2026-09-02", StartTime: "09:00"})
	require.NoError(t, err)

	// Отменяем первую запись
	cancelled := *first
	cancelled.Status = domain.StatusCancelled
	_, err = repo.Update(ctx, &cancelled)
	require.NoError(t, err)

	byProvider := repo.List(ctx, domain.AppointmentsFilter{ProviderID: ptr.Ptr("anna")})
	assert.Len(t, byProvider, 2)

	byDate := repo.List(ctx, domain.AppointmentsFilter{Date: ptr.Ptr("2026-09-01")})
	assert.Len(t, byDate, 2)

	// ActiveOnly исключает отмененные
	active := repo.List(ctx, domain.AppointmentsFilter{Date: ptr.Ptr("2026-09-01"), ActiveOnly: true})
	require.Len(t, active, 1)
	assert.Equal(t, "maria", active[0].ProviderID)
}

func TestRepository_ListSortByTime(t *testing.T) {
	repo := newTestRepository(t, newFakeStore())
	ctx := context.Background()

	for _, start := range []types.TimeString{"15:00", "09:30", "12:00"} {
		_, err := repo.Create(ctx, &domain.Appointment{ProviderID: "anna", Date: "2026-09-01", StartTime: start})
		require.NoError(t, err)
	}

	sorted := repo.List(ctx, domain.AppointmentsFilter{SortByTime: true})
	require.Len(t, sorted, 3)
	assert.Equal(t, types.TimeString("09:30"), sorted[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), sorted[1].StartTime)
	assert.Equal(t, types.TimeString("15:00"), sorted[2].StartTime)

	// Без SortByTime сохраняется порядок вставки
	unsorted := repo.List(ctx, domain.AppointmentsFilter{})
	require.Len(t, unsorted, 3)
	assert.Equal(t, types.TimeString("15:00"), unsorted[0].StartTime)
}

func TestRepository_SnapshotRoundTrip(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepository(t, store)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Appointment{
		ProviderID:  "anna",
		Date:        "2026-09-01",
		StartTime:   "10:00",
		ServiceName: "Чистка лица",
		Price:       2000,
		ClientName:  "Ольга",
	})
	require.NoError(t, err)

	// Новый репозиторий поверх того же хранилища видит сохраненное состояние
	reloaded, err := NewRepository(ctx, store)
	require.NoError(t, err)

	got, err := reloaded.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Чистка лица", got.ServiceName)
	assert.Equal(t, domain.StatusScheduled, got.Status)
}

func TestRepository_LegacyDurationDefaultsTo60(t *testing.T) {
	store := newFakeStore()
	// Снапшот старого формата без durationMinutes
	store.data[snapshot.KeyAppointments] = []byte(`[{
		"id": "100",
		"providerId": "anna",
		"date": "2026-09-01",
		"time": "10:00",
		"status": "scheduled"
	}]`)

	repo, err := NewRepository(context.Background(), store)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, 60, got.DurationMinutes)
}

func TestRepository_DeleteMissing(t *testing.T) {
	repo := newTestRepository(t, newFakeStore())

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
}
