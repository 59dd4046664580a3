package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	appointmentsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/appointments"
	financesRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/finances"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
	"github.com/kmlvv/BSM-SalonService/internal/service/appointments/models"
	updateStatusUC "github.com/kmlvv/BSM-SalonService/internal/usecase/update_appointment_status"
	"github.com/kmlvv/BSM-SalonService/pkg/ptr"
	"github.com/kmlvv/BSM-SalonService/pkg/simpletxmanager"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// fakeStore снапшотное хранилище в памяти, общее для нескольких репозиториев
type fakeStore struct {
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, snapshot.ErrKeyNotFound
	}
	return data, nil
}

func (s *fakeStore) Save(_ context.Context, key string, data []byte) error {
	s.data[key] = data
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Delete_KeepsDerivedFinanceRecord(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	appointmentRepository, err := appointmentsRepo.NewRepository(ctx, store)
	require.NoError(t, err)
	financeRepository, err := financesRepo.NewRepository(ctx, store)
	require.NoError(t, err)

	created, err := appointmentRepository.Create(ctx, &domain.Appointment{
		ProviderID:      "anna",
		ProviderName:    "Анна",
		Date:            "2026-09-01",
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		ServiceName:     "Чистка лица",
		Price:           2500,
		ClientName:      "Ольга",
	})
	require.NoError(t, err)

	// Доводим запись до completed через жизненный цикл: доход порождается
	// той же логикой, что и в рабочем пути
	uc := updateStatusUC.NewUseCase(
		appointmentRepository,
		financeRepository,
		simpletxmanager.NewTransactionManager(),
		nopLogger{},
	)

	for _, status := range []string{"confirmed", "completed"} {
		_, err := uc.Execute(ctx, &updateStatusUC.Request{
			AppointmentID: created.ID,
			Status:        status,
			ActorID:       "anna",
		})
		require.NoError(t, err)
	}

	records := financeRepository.List(ctx, domain.FinanceFilter{})
	require.Len(t, records, 1)
	require.NotNil(t, records[0].AppointmentID)
	require.Equal(t, created.ID, *records[0].AppointmentID)

	svc := NewService(appointmentRepository, nopLogger{})
	require.NoError(t, svc.Delete(ctx, created.ID))

	// Запись удалена из календаря
	_, err = appointmentRepository.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, appointmentsRepo.ErrAppointmentNotFound)

	// Порожденный доход пережил удаление источника
	records = financeRepository.List(ctx, domain.FinanceFilter{})
	require.Len(t, records, 1)
	assert.Equal(t, 2500.0, records[0].Amount)
	assert.Equal(t, created.ID, *records[0].AppointmentID)
}

func TestService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, err := appointmentsRepo.NewRepository(ctx, newFakeStore())
	require.NoError(t, err)

	svc := NewService(repo, nopLogger{})
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrAppointmentNotFound)
}

func TestService_List_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	repo, err := appointmentsRepo.NewRepository(ctx, newFakeStore())
	require.NoError(t, err)

	svc := NewService(repo, nopLogger{})
	_, err = svc.List(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
