package create_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	catalogRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/catalog"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  []*domain.Appointment
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.existing {
		if filter.ProviderID != nil && a.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		if filter.ActiveOnly && !a.IsActive() {
			continue
		}
		result = append(result, a)
	}
	return result
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	created := *a
	created.ID = "1756400000000000000"
	created.Status = domain.StatusScheduled
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, usersRepo.ErrUserNotFound
}

type fakeCatalogRepo struct {
	services map[string]*domain.SalonService
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*domain.SalonService, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"anna": {ID: "anna", Name: "Анна", Role: domain.RoleCosmetologist},
	}}
	catalog := &fakeCatalogRepo{services: map[string]*domain.SalonService{
		"srv-1": {ID: "srv-1", Name: "Чистка лица", Price: 2500, DurationMinutes: 90},
	}}
	return NewUseCase(repo, users, catalog, fakeTxManager{}, nopLogger{})
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		ClientName: "Ольга",
		Price:      1500,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Анна", resp.ProviderName)
	// Длительность по умолчанию
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, repo.created, 1)
}

func TestExecute_ConflictInsideExisting(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: "1", ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:30",
		ClientName: "Ольга",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Empty(t, repo.created)
}

func TestExecute_TouchingAppointmentsDoNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: "1", ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(repo)

	// Начало ровно в момент окончания существующей записи
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "11:00",
		ClientName: "Ольга",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestExecute_CancelledSlotIsReusable(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: "1", ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		ClientName: "Ольга",
	})
	require.NoError(t, err)
}

func TestExecute_OtherProviderDoesNotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: "1", ProviderID: "maria", Date: "2026-09-01", StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		ClientName: "Ольга",
	})
	require.NoError(t, err)
}

func TestExecute_LegacyDurationDefaultsInConflictCheck(t *testing.T) {
	// Запись без длительности держит 60 минут
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: "1", ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00", DurationMinutes: 0, Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:45",
		ClientName: "Ольга",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_DenormalizesCatalogService(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: "anna",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		ServiceID:  "srv-1",
		ClientName: "Ольга",
	})
	require.NoError(t, err)

	assert.Equal(t, "Чистка лица", resp.ServiceName)
	assert.Equal(t, 2500.0, resp.Price)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_UnknownProvider(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: "ghost",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		ClientName: "Ольга",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing provider", req: &Request{Date: "2026-09-01", StartTime: "10:00", ClientName: "Ольга"}},
		{name: "missing date", req: &Request{ProviderID: "anna", StartTime: "10:00", ClientName: "Ольга"}},
		{name: "bad date format", req: &Request{ProviderID: "anna", Date: "01.09.2026", StartTime: "10:00", ClientName: "Ольга"}},
		{name: "missing client name", req: &Request{ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00"}},
		{name: "negative price", req: &Request{ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00", ClientName: "Ольга", Price: -1}},
		{name: "duration too long", req: &Request{ProviderID: "anna", Date: "2026-09-01", StartTime: "10:00", ClientName: "Ольга", DurationMinutes: 481}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
