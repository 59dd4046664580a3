package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/appointments"
	"github.com/kmlvv/BSM-SalonService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления записей клиентов.
// Создание и смена статуса живут в отдельных use case с проверкой конфликтов.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи по фильтру, отсортированные по времени начала
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, provider=%v, date=%v, status=%v",
		req.ProviderID, req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items := s.appointmentRepo.List(ctx, filter)

	s.logger.Info("List: found %d appointments", len(items))
	return models.FromDomainAppointments(items), nil
}

// Delete удаляет запись из календаря.
// Порожденные финансовые записи при этом сохраняются: ссылка appointmentId слабая.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}
