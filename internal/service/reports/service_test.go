package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/service/reports/models"
	"github.com/kmlvv/BSM-SalonService/pkg/ptr"
)

type fakeFinanceRepo struct {
	records []*domain.FinanceRecord
}

func (f *fakeFinanceRepo) List(_ context.Context, filter domain.FinanceFilter) []*domain.FinanceRecord {
	result := make([]*domain.FinanceRecord, 0)
	for _, r := range f.records {
		if filter.DateFrom != nil && r.Date < *filter.DateFrom {
			continue
		}
		if filter.DateTo != nil && r.Date > *filter.DateTo {
			continue
		}
		result = append(result, r)
	}
	return result
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) []*domain.Appointment {
	return f.appointments
}

type fakeUserRepo struct {
	users []*domain.User
}

func (f *fakeUserRepo) List(_ context.Context) []*domain.User {
	return f.users
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	finances := &fakeFinanceRepo{records: []*domain.FinanceRecord{
		{ID: "f-1", Type: domain.FinanceIncome, Amount: 2500, Date: "2026-09-01", Owner: "anna"},
		{ID: "f-2", Type: domain.FinanceIncome, Amount: 1500, Date: "2026-09-02", Owner: "maria"},
		{ID: "f-3", Type: domain.FinanceIncome, Amount: 1000, Date: "2026-09-03", Owner: domain.OwnerCommon},
		{ID: "f-4", Type: domain.FinanceExpense, Amount: 700, Date: "2026-09-02", Owner: domain.OwnerCommon},
	}}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: "a-1", ProviderID: "anna", Date: "2026-09-01", Status: domain.StatusCompleted},
		{ID: "a-2", ProviderID: "maria", Date: "2026-09-02", Status: domain.StatusCompleted},
		{ID: "a-3", ProviderID: "anna", Date: "2026-09-03", Status: domain.StatusScheduled},
		{ID: "a-4", ProviderID: "anna", Date: "2026-09-10", Status: domain.StatusCancelled},
	}}
	users := &fakeUserRepo{users: []*domain.User{
		{ID: "anna", Name: "Анна"},
		{ID: "maria", Name: "Мария"},
	}}
	return NewService(finances, appointments, users, nopLogger{})
}

func TestService_Summary_WholeLedger(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Summary(context.Background(), &models.SummaryRequest{})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, resp.TotalIncome)
	assert.Equal(t, 700.0, resp.TotalExpense)
	assert.Equal(t, 4300.0, resp.Profit)

	assert.Equal(t, map[string]int{
		"completed": 2,
		"scheduled": 1,
		"cancelled": 1,
	}, resp.AppointmentsByStatus)

	// Строки по мастерам в порядке списка сотрудников; общий доход
	// владельца common ни одному мастеру не приписывается
	require.Len(t, resp.ByProvider, 2)
	assert.Equal(t, "anna", resp.ByProvider[0].ProviderID)
	assert.Equal(t, 2500.0, resp.ByProvider[0].Income)
	assert.Equal(t, 1, resp.ByProvider[0].Appointments)
	assert.Equal(t, "maria", resp.ByProvider[1].ProviderID)
	assert.Equal(t, 1500.0, resp.ByProvider[1].Income)
	assert.Equal(t, 1, resp.ByProvider[1].Appointments)
}

func TestService_Summary_Period(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Summary(context.Background(), &models.SummaryRequest{
		DateFrom: ptr.Ptr("2026-09-02"),
		DateTo:   ptr.Ptr("2026-09-03"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-02", resp.DateFrom)
	assert.Equal(t, "2026-09-03", resp.DateTo)
	assert.Equal(t, 2500.0, resp.TotalIncome)
	assert.Equal(t, 700.0, resp.TotalExpense)
	assert.Equal(t, 1800.0, resp.Profit)

	// Запись a-1 от 2026-09-01 и a-4 от 2026-09-10 в период не попадают
	assert.Equal(t, map[string]int{
		"completed": 1,
		"scheduled": 1,
	}, resp.AppointmentsByStatus)
	assert.Equal(t, 0, resp.ByProvider[0].Appointments)
	assert.Equal(t, 1, resp.ByProvider[1].Appointments)
}

func TestService_Summary_ValidationErrors(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *models.SummaryRequest
	}{
		{name: "bad dateFrom", req: &models.SummaryRequest{DateFrom: ptr.Ptr("01.09.2026")}},
		{name: "bad dateTo", req: &models.SummaryRequest{DateTo: ptr.Ptr("tomorrow")}},
		{name: "from after to", req: &models.SummaryRequest{
			DateFrom: ptr.Ptr("2026-09-10"),
			DateTo:   ptr.Ptr("2026-09-01"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Summary(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
