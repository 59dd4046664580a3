package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
)

// Repository репозиторий записей клиентов поверх снапшотного хранилища.
// Коллекция целиком держится в памяти в порядке вставки; каждая мутация
// сначала записывает полный снапшот в хранилище и только при успехе
// коммитит изменение в память (write-then-commit). Если запись снапшота
// упала, in-memory состояние не меняется.
type Repository struct {
	store snapshot.Store
	now   func() time.Time

	mu    sync.RWMutex
	items []domain.Appointment
}

// NewRepository создает репозиторий и загружает снапшот "appointments".
// Отсутствующий снапшот (первый запуск) — не ошибка, коллекция пустая.
func NewRepository(ctx context.Context, store snapshot.Store) (*Repository, error) {
	r := &Repository{
		store: store,
		now:   time.Now,
	}

	data, err := store.Load(ctx, snapshot.KeyAppointments)
	if err != nil {
		if errors.Is(err, snapshot.ErrKeyNotFound) {
			return r, nil
		}
		return nil, err
	}

	var records []appointmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	r.items = make([]domain.Appointment, 0, len(records))
	for _, rec := range records {
		r.items = append(r.items, rec.toDomain())
	}

	return r, nil
}

// List возвращает записи по фильтру.
// Порядок — порядок вставки, либо по времени начала при filter.SortByTime.
func (r *Repository) List(_ context.Context, filter domain.AppointmentsFilter) []*domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for i := range r.items {
		a := r.items[i]
		if !matches(&a, filter) {
			continue
		}
		result = append(result, &a)
	}

	if filter.SortByTime {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		})
	}

	return result
}

// GetByID возвращает запись по идентификатору
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			a := r.items[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
}

// Create добавляет новую запись: присваивает id и таймстемпы, выставляет
// начальный статус scheduled и сбрасывает флаг financeRecorded.
// Проверка конфликтов — ответственность вызывающего usecase.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	a := *appointment
	// Уникальный в пределах процесса монотонный токен; защита от коллизий
	// не требуется при однопользовательском профиле записи
	a.ID = strconv.FormatInt(now.UnixNano(), 10)
	a.Status = domain.StatusScheduled
	a.FinanceRecorded = false
	a.CreatedAt = now
	a.UpdatedAt = now

	next := make([]domain.Appointment, len(r.items), len(r.items)+1)
	copy(next, r.items)
	next = append(next, a)

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &a, nil
}

// Update заменяет существующую запись целиком (по id)
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == appointment.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, appointment.ID)
	}

	a := *appointment
	a.UpdatedAt = r.now()

	next := make([]domain.Appointment, len(r.items))
	copy(next, r.items)
	next[idx] = a

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &a, nil
}

// Delete безусловно удаляет запись.
// Связанные финансовые записи каскадно НЕ удаляются.
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
		return fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
	}

	next := make([]domain.Appointment, 0, len(r.items)-1)
	next = append(next, r.items[:idx]...)
	next = append(next, r.items[idx+1:]...)

	if err := r.save(ctx, next); err != nil {
		return err
	}

	r.items = next
	return nil
}

func (r *Repository) save(ctx context.Context, items []domain.Appointment) error {
	records := make([]appointmentRecord, 0, len(items))
	for _, a := range items {
		records = append(records, fromDomain(a))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}

	return r.store.Save(ctx, snapshot.KeyAppointments, data)
}

func matches(a *domain.Appointment, filter domain.AppointmentsFilter) bool {
	if filter.ProviderID != nil && a.ProviderID != *filter.ProviderID {
		return false
	}
	if filter.Date != nil && a.Date != *filter.Date {
		return false
	}
	if filter.Status != nil && a.Status != *filter.Status {
		return false
	}
	if filter.ActiveOnly && !a.IsActive() {
		return false
	}
	return true
}
