package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	catalogRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/catalog"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
	"github.com/kmlvv/BSM-SalonService/pkg/ptr"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// UseCase use case для создания записи клиента с проверкой конфликтов
type UseCase struct {
	appointmentRepo AppointmentRepository
	userRepo        UserRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	userRepo UserRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка конфликта и вставка выполняются как один логический шаг
// под глобальной блокировкой: между ними не может вклиниться другой create.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: provider=%s, date=%s, time=%s, duration=%d",
		req.ProviderID, req.Date, req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	provider, err := uc.userRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Денормализуем данные услуги из каталога, если указан serviceId
	serviceName := req.ServiceName
	price := req.Price
	duration := req.DurationMinutes

	if req.ServiceID != "" {
		service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if serviceName == "" {
			serviceName = service.Name
		}
		if price == 0 {
			price = service.Price
		}
		if duration == 0 {
			duration = service.DurationMinutes
		}
	}

	duration = effectiveDuration(duration)

	candidate, err := types.NewInterval(req.StartTime, duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	var result *domain.Appointment

	// 4. Проверка конфликта и вставка — один логический шаг
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Активные записи того же мастера на ту же дату.
		// Отмененные записи слот не держат и в проверке не участвуют.
		active := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			ProviderID: ptr.Ptr(req.ProviderID),
			Date:       ptr.Ptr(req.Date),
			ActiveOnly: true,
		})

		// 4.2. Полуоткрытое пересечение интервалов: записи, граничащие
		// по времени (конец одной == начало другой), конфликтом не считаются
		for _, existing := range active {
			interval, err := existing.Interval()
			if err != nil {
				// Запись с нечитаемым временем не может держать слот
				uc.logger.Warn("CreateAppointment: skipping appointment id=%s with bad time: %v",
					existing.ID, err)
				continue
			}
			if candidate.Overlaps(interval) {
				uc.logger.Warn("CreateAppointment: conflict with appointment id=%s (%s, %d min)",
					existing.ID, existing.StartTime, existing.EffectiveDuration())
				return ErrTimeConflict
			}
		}

		// 4.3. Создаем запись; статус и флаг финансов выставляет репозиторий
		appointment := &domain.Appointment{
			ProviderID:      req.ProviderID,
			ProviderName:    provider.Name,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			ServiceID:       req.ServiceID,
			ServiceName:     serviceName,
			Price:           price,
			ClientID:        req.ClientID,
			ClientName:      req.ClientName,
			CommonOwned:     req.CommonOwned,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to persist appointment: %v", err)
			return fmt.Errorf("%w: failed to persist appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

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
