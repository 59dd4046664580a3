package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kmlvv/BSM-SalonService/pkg/psqlbuilder"
)

const snapshotsTable = "snapshots"

// PostgresStore бэкенд поверх PostgreSQL: таблица key -> JSON-снапшот
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает постгрес-хранилище снапшотов
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema создает таблицу снапшотов, если её еще нет
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + snapshotsTable + ` (
		key        TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: init schema: %v", ErrSave, err)
	}
	return nil
}

// Load читает снапшот по ключу
func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("data").
		From(snapshotsTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select query: %v", ErrLoad, err)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("%w: select %s: %v", ErrLoad, key, err)
	}

	return data, nil
}

// Save записывает снапшот по ключу (upsert)
func (s *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := psqlbuilder.Insert(snapshotsTable).
		Columns("key", "data").
		Values(key, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build upsert query: %v", ErrSave, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsert %s: %v", ErrSave, key, err)
	}

	return nil
}
