package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients.repository: client not found")

	// ErrDecodeSnapshot возвращается при ошибке разбора снапшота
	ErrDecodeSnapshot = errors.New("clients.repository: failed to decode snapshot")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снапшота
	ErrEncodeSnapshot = errors.New("clients.repository: failed to encode snapshot")
)
