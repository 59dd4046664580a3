package materials

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

// materialRecord формат записи в снапшоте "materials"
type materialRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	MinQuantity float64   `json:"minQuantity,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Repository репозиторий складских материалов
type Repository struct {
	store snapshot.Store
	now   func() time.Time

	mu    sync.RWMutex
	items []domain.Material
}

// NewRepository создает репозиторий и загружает снапшот "materials"
func NewRepository(ctx context.Context, store snapshot.Store) (*Repository, error) {
	r := &Repository{store: store, now: time.Now}

	data, err := store.Load(ctx, snapshot.KeyMaterials)
	if err != nil {
		if errors.Is(err, snapshot.ErrKeyNotFound) {
			return r, nil
		}
		return nil, err
	}

	var records []materialRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	r.items = make([]domain.Material, 0, len(records))
	for _, rec := range records {
		r.items = append(r.items, domain.Material{
			ID:          rec.ID,
			Name:        rec.Name,
			Quantity:    rec.Quantity,
			Unit:        rec.Unit,
			MinQuantity: rec.MinQuantity,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}

	return r, nil
}

// List возвращает все материалы в порядке вставки
func (r *Repository) List(_ context.Context) []*domain.Material {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Material, 0, len(r.items))
	for i := range r.items {
		m := r.items[i]
		result = append(result, &m)
	}
	return result
}

// Create добавляет материал
func (r *Repository) Create(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	m := *material
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	next := make([]domain.Material, len(r.items), len(r.items)+1)
	copy(next, r.items)
	next = append(next, m)

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &m, nil
}

// UpdateQuantity изменяет остаток материала
func (r *Repository) UpdateQuantity(ctx context.Context, id string, quantity float64) (*domain.Material, error) {
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
		return nil, fmt.Errorf("%w: id=%s", ErrMaterialNotFound, id)
	}

	m := r.items[idx]
	m.Quantity = quantity
	m.UpdatedAt = r.now()

	next := make([]domain.Material, len(r.items))
	copy(next, r.items)
	next[idx] = m

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &m, nil
}

// Delete удаляет материал
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
		return fmt.Errorf("%w: id=%s", ErrMaterialNotFound, id)
	}

	next := make([]domain.Material, 0, len(r.items)-1)
	next = append(next, r.items[:idx]...)
	next = append(next, r.items[idx+1:]...)

	if err := r.save(ctx, next); err != nil {
		return err
	}

	r.items = next
	return nil
}

func (r *Repository) save(ctx context.Context, items []domain.Material) error {
	records := make([]materialRecord, 0, len(items))
	for _, m := range items {
		records = append(records, materialRecord{
			ID:          m.ID,
			Name:        m.Name,
			Quantity:    m.Quantity,
			Unit:        m.Unit,
			MinQuantity: m.MinQuantity,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}

	return r.store.Save(ctx, snapshot.KeyMaterials, data)
}
