package snapshot

import (
	"context"
	"database/sql"
)

// Store контракт внешнего key-value хранилища снапшотов.
// Значение — сериализованная JSON-коллекция целиком; частичных обновлений нет.
type Store interface {
	// Load возвращает ранее сохраненный снапшот по ключу
	// или ErrKeyNotFound, если ключ никогда не записывался
	Load(ctx context.Context, key string) ([]byte, error)

	// Save атомарно записывает снапшот по ключу
	Save(ctx context.Context, key string, data []byte) error
}

// Логические ключи снапшотов
const (
	KeyAppointments = "appointments"
	KeyFinances     = "finances"
	KeyUsers        = "users"
	KeyServices     = "services"
	KeyMaterials    = "materials"
	KeyClients      = "clients"
)

// DBExecutor подмножество *sql.DB, используемое постгрес-бэкендом
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
