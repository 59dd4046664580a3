package finances

import "errors"

var (
	// ErrRecordNotFound возвращается, когда финансовая запись не найдена
	ErrRecordNotFound = errors.New("finances.repository: record not found")

	// ErrDecodeSnapshot возвращается при ошибке разбора снапшота
	ErrDecodeSnapshot = errors.New("finances.repository: failed to decode snapshot")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снапшота
	ErrEncodeSnapshot = errors.New("finances.repository: failed to encode snapshot")
)
