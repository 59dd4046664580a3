package clients

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

// clientRecord формат записи в снапшоте "clients"
type clientRecord struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Visits    []visitRecord `json:"visits"`
	CreatedAt time.Time     `json:"createdAt"`
}

type visitRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ServiceName string  `json:"serviceName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// Repository репозиторий карточек клиентов
type Repository struct {
	store snapshot.Store
	now   func() time.Time

	mu    sync.RWMutex
	items []domain.Client
}

// NewRepository создает репозиторий и загружает снапшот "clients"
func NewRepository(ctx context.Context, store snapshot.Store) (*Repository, error) {
	r := &Repository{store: store, now: time.Now}

	data, err := store.Load(ctx, snapshot.KeyClients)
	if err != nil {
		if errors.Is(err, snapshot.ErrKeyNotFound) {
			return r, nil
		}
		return nil, err
	}

	var records []clientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	r.items = make([]domain.Client, 0, len(records))
	for _, rec := range records {
		r.items = append(r.items, rec.toDomain())
	}

	return r, nil
}

// List возвращает всех клиентов в порядке вставки
func (r *Repository) List(_ context.Context) []*domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Client, 0, len(r.items))
	for i := range r.items {
		c := cloneClient(r.items[i])
		result = append(result, &c)
	}
	return result
}

// GetByID возвращает клиента по идентификатору
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			c := cloneClient(r.items[i])
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrClientNotFound, id)
}

// Create добавляет карточку клиента с пустой историей визитов
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cloneClient(*client)
	c.ID = uuid.NewString()
	c.Visits = []domain.Visit{}
	c.CreatedAt = r.now()

	next := make([]domain.Client, len(r.items), len(r.items)+1)
	copy(next, r.items)
	next = append(next, c)

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	out := cloneClient(c)
	return &out, nil
}

// AddVisit добавляет визит в историю клиента
func (r *Repository) AddVisit(ctx context.Context, clientID string, visit domain.Visit) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == clientID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: id=%s", ErrClientNotFound, clientID)
	}

	visit.ID = uuid.NewString()

	c := cloneClient(r.items[idx])
	c.Visits = append(c.Visits, visit)

	next := make([]domain.Client, len(r.items))
	copy(next, r.items)
	next[idx] = c

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	out := cloneClient(c)
	return &out, nil
}

func (r *Repository) save(ctx context.Context, items []domain.Client) error {
	records := make([]clientRecord, 0, len(items))
	for _, c := range items {
		records = append(records, fromDomain(c))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}

	return r.store.Save(ctx, snapshot.KeyClients, data)
}

func (rec clientRecord) toDomain() domain.Client {
	visits := make([]domain.Visit, 0, len(rec.Visits))
	for _, v := range rec.Visits {
		visits = append(visits, domain.Visit{
			ID:          v.ID,
			Date:        v.Date,
			ServiceName: v.ServiceName,
			Price:       v.Price,
			Notes:       v.Notes,
		})
	}
	return domain.Client{
		ID:        rec.ID,
		Name:      rec.Name,
		Phone:     rec.Phone,
		Notes:     rec.Notes,
		Visits:    visits,
		CreatedAt: rec.CreatedAt,
	}
}

func fromDomain(c domain.Client) clientRecord {
	visits := make([]visitRecord, 0, len(c.Visits))
	for _, v := range c.Visits {
		visits = append(visits, visitRecord{
			ID:          v.ID,
			Date:        v.Date,
			ServiceName: v.ServiceName,
			Price:       v.Price,
			Notes:       v.Notes,
		})
	}
	return clientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Visits:    visits,
		CreatedAt: c.CreatedAt,
	}
}

// cloneClient делает глубокую копию, чтобы слайс визитов не делился
// между in-memory состоянием и результатами, отданными наружу
func cloneClient(c domain.Client) domain.Client {
	visits := make([]domain.Visit, len(c.Visits))
	copy(visits, c.Visits)
	c.Visits = visits
	return c
}
