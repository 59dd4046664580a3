package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
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

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, usersRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule() Schedule {
	return Schedule{
		Open:        types.TimeString("09:00"),
		Close:       types.TimeString("20:30"),
		StepMinutes: 30,
	}
}

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"provider-1": {ID: "provider-1", Name: "Анна"},
		"provider-2": {ID: "provider-2", Name: "Мария"},
	}}
	return NewUseCase(repo, users, testSchedule(), nopLogger{})
}

func slotByStart(t *testing.T, slots []domain.Slot, start types.TimeString) domain.Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("slot %s not found in response", start)
	return domain.Slot{}
}

func TestUseCase_Execute_GridCoversWorkingHours(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	// 09:00 .. 20:00 с шагом 30 минут
	require.Len(t, resp.Slots, 23)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:00"), resp.Slots[22].StartTime)

	for _, s := range resp.Slots[:22] {
		assert.Equal(t, domain.SlotAvailable, s.Status, "slot %s", s.StartTime)
	}
	// 20:00 + 30 упирается ровно в 20:30 и еще помещается
	assert.Equal(t, domain.SlotAvailable, resp.Slots[22].Status)
}

func TestUseCase_Execute_BusySelfAroundAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              "a-1",
			ProviderID:      "provider-1",
			Date:            "2026-09-01",
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	// Интервал записи [10:00, 11:00): стык в 10:00 не конфликтует
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "09:30").Status)
	assert.Equal(t, domain.SlotBusySelf, slotByStart(t, resp.Slots, "10:00").Status)
	assert.Equal(t, domain.SlotBusySelf, slotByStart(t, resp.Slots, "10:30").Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "11:00").Status)
}

func TestUseCase_Execute_BusyOtherForDifferentProvider(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              "a-1",
			ProviderID:      "provider-2",
			Date:            "2026-09-01",
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBusyOther, slotByStart(t, resp.Slots, "10:00").Status)
	assert.Equal(t, domain.SlotBusyOther, slotByStart(t, resp.Slots, "10:30").Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "11:00").Status)
}

func TestUseCase_Execute_BusySelfWinsOverBusyOther(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              "a-1",
			ProviderID:      "provider-1",
			Date:            "2026-09-01",
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusScheduled,
		},
		{
			ID:              "a-2",
			ProviderID:      "provider-2",
			Date:            "2026-09-01",
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBusySelf, slotByStart(t, resp.Slots, "10:00").Status)
}

func TestUseCase_Execute_NotEnoughTimeBeforeClosing(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// 19:30 + 60 = 20:30 — ровно до закрытия, помещается;
	// 20:00 + 60 = 21:00 — выходит за границу
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "19:30").Status)
	assert.Equal(t, domain.SlotNotEnoughTime, slotByStart(t, resp.Slots, "20:00").Status)
}

func TestUseCase_Execute_BusyWinsOverNotEnoughTime(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              "a-1",
			ProviderID:      "provider-1",
			Date:            "2026-09-01",
			StartTime:       types.TimeString("20:00"),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// Слот и занят, и не помещается до закрытия: занятость важнее
	assert.Equal(t, domain.SlotBusySelf, slotByStart(t, resp.Slots, "20:00").Status)
}

func TestUseCase_Execute_CancelledAppointmentsIgnored(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              "a-1",
			ProviderID:      "provider-1",
			Date:            "2026-09-01",
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusCancelled,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "10:00").Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "10:30").Status)
}

func TestUseCase_Execute_OtherDateIgnored(t *testing.T) {
	repo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              "a-1",
			ProviderID:      "provider-1",
			Date:            "2026-09-02",
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "provider-1",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, slotByStart(t, resp.Slots, "10:00").Status)
}

func TestUseCase_Execute_ZeroDurationDefaultsTo60(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: "provider-1",
		Date:       "2026-09-01",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	// С длительностью 60 последний старт 20:00 уже не помещается
	assert.Equal(t, domain.SlotNotEnoughTime, slotByStart(t, resp.Slots, "20:00").Status)
}

func TestUseCase_Execute_UnknownProvider(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:      "missing",
		Date:            "2026-09-01",
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing provider", req: &Request{Date: "2026-09-01", DurationMinutes: 30}},
		{name: "missing date", req: &Request{ProviderID: "provider-1", DurationMinutes: 30}},
		{name: "bad date format", req: &Request{ProviderID: "provider-1", Date: "01.09.2026", DurationMinutes: 30}},
		{name: "negative duration", req: &Request{ProviderID: "provider-1", Date: "2026-09-01", DurationMinutes: -30}},
		{name: "duration too long", req: &Request{ProviderID: "provider-1", Date: "2026-09-01", DurationMinutes: 481}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
