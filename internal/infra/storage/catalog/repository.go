package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
)

// serviceRecord формат записи в снапшоте "services"
type serviceRecord struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Repository репозиторий каталога услуг салона
type Repository struct {
	store snapshot.Store
	now   func() time.Time

	mu    sync.RWMutex
	items []domain.SalonService
}

// NewRepository создает репозиторий и загружает снапшот "services"
func NewRepository(ctx context.Context, store snapshot.Store) (*Repository, error) {
	r := &Repository{store: store, now: time.Now}

	data, err := store.Load(ctx, snapshot.KeyServices)
	if err != nil {
		if errors.Is(err, snapshot.ErrKeyNotFound) {
			return r, nil
		}
		return nil, err
	}

	var records []serviceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	r.items = make([]domain.SalonService, 0, len(records))
	for _, rec := range records {
		duration := rec.DurationMinutes
		if duration <= 0 {
			duration = domain.DefaultDurationMinutes
		}
		r.items = append(r.items, domain.SalonService{
			ID:              rec.ID,
			Name:            rec.Name,
			Category:        rec.Category,
			Price:           rec.Price,
			DurationMinutes: duration,
			CreatedAt:       rec.CreatedAt,
			UpdatedAt:       rec.UpdatedAt,
		})
	}

	return r, nil
}

// List возвращает все услуги каталога в порядке вставки
func (r *Repository) List(_ context.Context) []*domain.SalonService {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.SalonService, 0, len(r.items))
	for i := range r.items {
		s := r.items[i]
		result = append(result, &s)
	}
	return result
}

// GetByID возвращает услугу по идентификатору
func (r *Repository) GetByID(_ context.Context, id string) (*domain.SalonService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
}

// Create добавляет услугу в каталог
func (r *Repository) Create(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	s := *service
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	next := make([]domain.SalonService, len(r.items), len(r.items)+1)
	copy(next, r.items)
	next = append(next, s)

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &s, nil
}

// Update заменяет услугу целиком (по id)
func (r *Repository) Update(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == service.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, service.ID)
	}

	s := *service
	s.CreatedAt = r.items[idx].CreatedAt
	s.UpdatedAt = r.now()

	next := make([]domain.SalonService, len(r.items))
	copy(next, r.items)
	next[idx] = s

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &s, nil
}

// Delete удаляет услугу из каталога
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
	}

	next := make([]domain.SalonService, 0, len(r.items)-1)
	next = append(next, r.items[:idx]...)
	next = append(next, r.items[idx+1:]...)

	if err := r.save(ctx, next); err != nil {
		return err
	}

	r.items = next
	return nil
}

func (r *Repository) save(ctx context.Context, items []domain.SalonService) error {
	records := make([]serviceRecord, 0, len(items))
	for _, s := range items {
		records = append(records, serviceRecord{
			ID:              s.ID,
			Name:            s.Name,
			Category:        s.Category,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			CreatedAt:       s.CreatedAt,
			UpdatedAt:       s.UpdatedAt,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}

	return r.store.Save(ctx, snapshot.KeyServices, data)
}
