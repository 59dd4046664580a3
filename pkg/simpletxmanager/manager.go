package simpletxmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует мутирующие операции через один глобальный мьютекс.
// Снапшотное хранилище не поддерживает настоящие транзакции, поэтому
// "проверить конфликт и вставить" выполняется как один логический шаг:
// пока fn не вернется, ни одна другая мутация не начнется.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый менеджер
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под глобальной блокировкой
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под глобальной блокировкой.
// Отдельного уровня изоляции здесь нет: блокировка уже сериализует все операции.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
