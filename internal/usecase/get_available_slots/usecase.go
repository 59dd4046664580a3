package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
	"github.com/kmlvv/BSM-SalonService/pkg/ptr"
)

// UseCase use case перечисления слотов сетки для кандидатной длительности
type UseCase struct {
	appointmentRepo AppointmentRepository
	userRepo        UserRepository
	schedule        Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	userRepo UserRepository,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case перечисления слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s, duration=%d",
		req.ProviderID, req.Date, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	if _, err := uc.userRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 3. Генерируем сетку кандидатных стартов
	grid, err := generateGrid(uc.schedule)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate grid: %v", ErrInternal, err)
	}

	closeMinutes, err := uc.schedule.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	// 4. Активные записи ВСЕХ мастеров на дату: сетка общая,
	// чужие записи отдаются как busy_other
	active := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		Date:       ptr.Ptr(req.Date),
		ActiveOnly: true,
	})

	// 5. Классифицируем каждый старт сетки
	slots := make([]domain.Slot, 0, len(grid))
	for _, start := range grid {
		slots = append(slots, domain.Slot{
			StartTime:       start,
			DurationMinutes: duration,
			Status:          classifySlot(start, duration, req.ProviderID, closeMinutes, active),
		})
	}

	uc.logger.Info("GetAvailableSlots: classified %d slots for provider=%s, date=%s",
		len(slots), req.ProviderID, req.Date)

	return &Response{
		ProviderID:      req.ProviderID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
