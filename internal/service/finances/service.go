package finances

import (
	"context"
	"fmt"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/service/finances/models"
)

// Service сервис финансового журнала.
// Журнал только пополняется: правок и удалений у финансовых записей нет.
type Service struct {
	financeRepo FinanceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса финансов
func NewService(financeRepo FinanceRepository, logger Logger) *Service {
	return &Service{
		financeRepo: financeRepo,
		logger:      logger,
	}
}

// Create добавляет финансовую запись вручную
func (s *Service) Create(ctx context.Context, req *models.CreateRecordRequest) (*models.RecordResponse, error) {
	s.logger.Info("Create: type=%s, category=%s, amount=%.2f, owner=%s",
		req.Type, req.Category, req.Amount, req.Owner)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	record := &domain.FinanceRecord{
		Type:        domain.FinanceRecordType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Owner:       req.Owner,
		CreatedBy:   req.CreatedBy,
	}

	created, err := s.financeRepo.Append(ctx, record)
	if err != nil {
		s.logger.Error("Create: failed to append record: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully appended record id=%s", created.ID)
	return models.FromDomainRecord(created), nil
}

// List получает финансовые записи по фильтру, свежие даты первыми
func (s *Service) List(ctx context.Context, req *models.ListRecordsRequest) (*models.RecordListResponse, error) {
	s.logger.Info("List: fetching records, viewer=%v, type=%v", req.ViewerID, req.Type)

	if req.Type != nil && !domain.FinanceRecordType(*req.Type).IsValid() {
		s.logger.Warn("List: invalid record type=%s", *req.Type)
		return nil, fmt.Errorf("%w: unknown record type %q", ErrInvalidInput, *req.Type)
	}

	items := s.financeRepo.List(ctx, req.ToDomainFilter())

	s.logger.Info("List: found %d records", len(items))
	return models.FromDomainRecords(items), nil
}

func validateCreateRequest(req *models.CreateRecordRequest) error {
	recordType := domain.FinanceRecordType(req.Type)
	if !recordType.IsValid() {
		return fmt.Errorf("%w: unknown record type %q", ErrInvalidInput, req.Type)
	}

	if !domain.IsValidCategory(recordType, req.Category) {
		return fmt.Errorf("%w: %q is not a %s category", ErrInvalidCategory, req.Category, req.Type)
	}

	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters",
			ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	if req.Owner == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	return nil
}
