package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrDecodeSnapshot возвращается при ошибке разбора снапшота
	ErrDecodeSnapshot = errors.New("catalog.repository: failed to decode snapshot")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снапшота
	ErrEncodeSnapshot = errors.New("catalog.repository: failed to encode snapshot")
)
