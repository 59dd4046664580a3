package update_appointment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	appointmentsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/appointments"
	financesRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/finances"
)

// UseCase use case смены статуса записи по таблице жизненного цикла
type UseCase struct {
	appointmentRepo AppointmentRepository
	financeRepo     FinanceRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	financeRepo FinanceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		financeRepo:     financeRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case смены статуса.
// Переход в completed ровно один раз порождает доходную запись в финансовом
// журнале: флаг financeRecorded на записи защищает от повторной генерации.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: id=%s, target=%s", req.AppointmentID, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: validation failed: %v", err)
		return nil, err
	}

	target := domain.AppointmentStatus(req.Status)

	var result *domain.Appointment

	// 2. Чтение, проверка перехода, генерация финансов и запись — один
	// логический шаг: параллельная смена статуса не породит второй доход
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем текущую запись
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointmentStatus: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointmentStatus: failed to get appointment id=%s: %v",
				req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Проверяем легальность перехода
		if !appointment.Status.CanTransitionTo(target) {
			uc.logger.Warn("UpdateAppointmentStatus: illegal transition %s -> %s for id=%s",
				appointment.Status, target, appointment.ID)
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, appointment.Status, target)
		}

		updated := *appointment
		updated.Status = target

		// 2.3. Завершение порождает доходную запись ровно один раз
		if target == domain.StatusCompleted && !appointment.FinanceRecorded {
			existing, err := uc.financeRepo.FindByAppointmentID(txCtx, appointment.ID)
			switch {
			case err == nil:
				// Сброшенный флаг при уже существующей порожденной записи
				// означает, что прошлый запуск упал между записью в журнал и
				// сохранением статуса; повторный доход не добавляем
				uc.logger.Warn("UpdateAppointmentStatus: income record id=%s already derived for appointment id=%s",
					existing.ID, appointment.ID)
				updated.FinanceRecorded = true

			case errors.Is(err, financesRepo.ErrRecordNotFound):
				record := &domain.FinanceRecord{
					Type:          domain.FinanceIncome,
					Category:      domain.CategoryService,
					Amount:        appointment.Price,
					Description:   financeDescription(appointment),
					Date:          appointment.Date,
					Owner:         appointment.FinanceOwner(),
					CreatedBy:     req.ActorID,
					AppointmentID: &appointment.ID,
				}

				if _, err := uc.financeRepo.Append(txCtx, record); err != nil {
					uc.logger.Error("UpdateAppointmentStatus: failed to append finance record for id=%s: %v",
						appointment.ID, err)
					return fmt.Errorf("%w: failed to append finance record: %v", ErrInternal, err)
				}

				updated.FinanceRecorded = true
				uc.logger.Info("UpdateAppointmentStatus: recorded income %.2f for appointment id=%s, owner=%s",
					appointment.Price, appointment.ID, record.Owner)

			default:
				uc.logger.Error("UpdateAppointmentStatus: failed to look up finance record for id=%s: %v",
					appointment.ID, err)
				return fmt.Errorf("%w: failed to look up finance record: %v", ErrInternal, err)
			}
		}

		// 2.4. Сохраняем запись с новым статусом
		saved, err := uc.appointmentRepo.Update(txCtx, &updated)
		if err != nil {
			uc.logger.Error("UpdateAppointmentStatus: failed to persist appointment id=%s: %v",
				appointment.ID, err)
			return fmt.Errorf("%w: failed to persist appointment: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment id=%s is now %s", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		ProviderID:      result.ProviderID,
		ProviderName:    result.ProviderName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		Price:           result.Price,
		ClientID:        result.ClientID,
		ClientName:      result.ClientName,
		Status:          string(result.Status),
		FinanceRecorded: result.FinanceRecorded,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// financeDescription собирает описание для автоматической доходной записи
func financeDescription(a *domain.Appointment) string {
	name := a.ServiceName
	if name == "" {
		name = "Услуга"
	}
	if a.ClientName != "" {
		return fmt.Sprintf("%s — %s", name, a.ClientName)
	}
	return name
}
