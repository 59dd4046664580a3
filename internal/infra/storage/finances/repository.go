package finances

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
)

// Repository append-only репозиторий финансового журнала.
// Записи никогда не изменяются и не удаляются: журнал — исторический факт,
// независимый от жизненного цикла породивших его записей клиентов.
type Repository struct {
	store snapshot.Store
	now   func() time.Time

	mu    sync.RWMutex
	items []domain.FinanceRecord
}

// NewRepository создает репозиторий и загружает снапшот "finances"
func NewRepository(ctx context.Context, store snapshot.Store) (*Repository, error) {
	r := &Repository{
		store: store,
		now:   time.Now,
	}

	data, err := store.Load(ctx, snapshot.KeyFinances)
	if err != nil {
		if errors.Is(err, snapshot.ErrKeyNotFound) {
			return r, nil
		}
		return nil, err
	}

	var records []financeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	r.items = make([]domain.FinanceRecord, 0, len(records))
	for _, rec := range records {
		r.items = append(r.items, rec.toDomain())
	}

	return r, nil
}

// Append добавляет запись в журнал: присваивает id и createdAt,
// сохраняет снапшот и только при успехе коммитит в память
func (r *Repository) Append(ctx context.Context, record *domain.FinanceRecord) (*domain.FinanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := *record
	f.ID = uuid.NewString()
	f.CreatedAt = r.now()

	next := make([]domain.FinanceRecord, len(r.items), len(r.items)+1)
	copy(next, r.items)
	next = append(next, f)

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &f, nil
}

// List возвращает записи по фильтру, отсортированные по дате по убыванию
// (порядок отображения журнала в исходном продукте)
func (r *Repository) List(_ context.Context, filter domain.FinanceFilter) []*domain.FinanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.FinanceRecord, 0)
	for i := range r.items {
		f := r.items[i]
		if !matches(&f, filter) {
			continue
		}
		result = append(result, &f)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})

	return result
}

// FindByAppointmentID возвращает порожденную запись по обратной ссылке
// appointmentId. Порожденная запись для одной записи клиента ровно одна.
func (r *Repository) FindByAppointmentID(_ context.Context, appointmentID string) (*domain.FinanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		f := r.items[i]
		if f.AppointmentID != nil && *f.AppointmentID == appointmentID {
			return &f, nil
		}
	}

	return nil, ErrRecordNotFound
}

func (r *Repository) save(ctx context.Context, items []domain.FinanceRecord) error {
	records := make([]financeRecord, 0, len(items))
	for _, f := range items {
		records = append(records, fromDomain(f))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}

	return r.store.Save(ctx, snapshot.KeyFinances, data)
}

func matches(f *domain.FinanceRecord, filter domain.FinanceFilter) bool {
	if filter.ViewerID != nil && !f.VisibleTo(*filter.ViewerID) {
		return false
	}
	if filter.Type != nil && f.Type != *filter.Type {
		return false
	}
	if filter.DateFrom != nil && f.Date < *filter.DateFrom {
		return false
	}
	if filter.DateTo != nil && f.Date > *filter.DateTo {
		return false
	}
	return true
}
