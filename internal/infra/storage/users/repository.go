package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
)

// userRecord формат записи в снапшоте "users".
// Пароль хранится только в виде bcrypt-хэша.
type userRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

// Repository репозиторий сотрудников салона
type Repository struct {
	store snapshot.Store

	mu    sync.RWMutex
	items []domain.User
}

// NewRepository создает репозиторий и загружает снапшот "users"
func NewRepository(ctx context.Context, store snapshot.Store) (*Repository, error) {
	r := &Repository{store: store}

	data, err := store.Load(ctx, snapshot.KeyUsers)
	if err != nil {
		if errors.Is(err, snapshot.ErrKeyNotFound) {
			return r, nil
		}
		return nil, err
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeSnapshot, err)
	}

	r.items = make([]domain.User, 0, len(records))
	for _, rec := range records {
		r.items = append(r.items, domain.User{
			ID:           rec.ID,
			Username:     rec.Username,
			PasswordHash: rec.PasswordHash,
			Name:         rec.Name,
			Role:         rec.Role,
		})
	}

	return r, nil
}

// Count возвращает количество пользователей
func (r *Repository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// GetByUsername возвращает пользователя по логину
func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].Username == username {
			u := r.items[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: username=%s", ErrUserNotFound, username)
}

// GetByID возвращает пользователя по идентификатору
func (r *Repository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			u := r.items[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrUserNotFound, id)
}

// List возвращает всех пользователей в порядке вставки
func (r *Repository) List(_ context.Context) []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, 0, len(r.items))
	for i := range r.items {
		u := r.items[i]
		result = append(result, &u)
	}
	return result
}

// Create добавляет пользователя (используется сидированием дефолтных мастеров)
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user

	next := make([]domain.User, len(r.items), len(r.items)+1)
	copy(next, r.items)
	next = append(next, u)

	if err := r.save(ctx, next); err != nil {
		return nil, err
	}

	r.items = next
	return &u, nil
}

func (r *Repository) save(ctx context.Context, items []domain.User) error {
	records := make([]userRecord, 0, len(items))
	for _, u := range items {
		records = append(records, userRecord{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			Role:         u.Role,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}

	return r.store.Save(ctx, snapshot.KeyUsers, data)
}
