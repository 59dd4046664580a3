package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/service/reports/models"
)

// Service сервис сводных отчетов по салону
type Service struct {
	financeRepo     FinanceRepository
	appointmentRepo AppointmentRepository
	userRepo        UserRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	financeRepo FinanceRepository,
	appointmentRepo AppointmentRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		financeRepo:     financeRepo,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// Summary строит сводный отчет за период: доход/расход/прибыль по журналу,
// счетчики записей по статусам и доход каждого мастера.
// Доход мастера считается по владельцу финансовой записи, так что личные
// и общие записи не смешиваются.
func (s *Service) Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: building report, from=%v, to=%v", req.DateFrom, req.DateTo)

	if err := validatePeriod(req); err != nil {
		s.logger.Warn("Summary: validation failed: %v", err)
		return nil, err
	}

	records := s.financeRepo.List(ctx, domain.FinanceFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})

	resp := &models.SummaryResponse{
		AppointmentsByStatus: map[string]int{},
	}
	if req.DateFrom != nil {
		resp.DateFrom = *req.DateFrom
	}
	if req.DateTo != nil {
		resp.DateTo = *req.DateTo
	}

	incomeByOwner := map[string]float64{}
	for _, r := range records {
		switch r.Type {
		case domain.FinanceIncome:
			resp.TotalIncome += r.Amount
			incomeByOwner[r.Owner] += r.Amount
		case domain.FinanceExpense:
			resp.TotalExpense += r.Amount
		}
	}
	resp.Profit = resp.TotalIncome - resp.TotalExpense

	appointments := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	completedByProvider := map[string]int{}
	for _, a := range appointments {
		if !inPeriod(a.Date, req.DateFrom, req.DateTo) {
			continue
		}
		resp.AppointmentsByStatus[string(a.Status)]++
		if a.Status == domain.StatusCompleted {
			completedByProvider[a.ProviderID]++
		}
	}

	// Строки отчета в порядке списка сотрудников, чтобы отчет был стабильным
	for _, u := range s.userRepo.List(ctx) {
		resp.ByProvider = append(resp.ByProvider, models.ProviderIncome{
			ProviderID:   u.ID,
			ProviderName: u.Name,
			Income:       incomeByOwner[u.ID],
			Appointments: completedByProvider[u.ID],
		})
	}

	s.logger.Info("Summary: income=%.2f, expense=%.2f, profit=%.2f",
		resp.TotalIncome, resp.TotalExpense, resp.Profit)

	return resp, nil
}

func validatePeriod(req *models.SummaryRequest) error {
	for _, d := range []*string{req.DateFrom, req.DateTo} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(domain.DateFormat, *d); err != nil {
			return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, *d)
		}
	}
	if req.DateFrom != nil && req.DateTo != nil && *req.DateFrom > *req.DateTo {
		return fmt.Errorf("%w: dateFrom must not be after dateTo", ErrInvalidInput)
	}
	return nil
}

// inPeriod проверяет попадание даты YYYY-MM-DD в период; сравнение строковое,
// формат дат лексикографически упорядочен
func inPeriod(date string, from, to *string) bool {
	if from != nil && date < *from {
		return false
	}
	if to != nil && date > *to {
		return false
	}
	return true
}
