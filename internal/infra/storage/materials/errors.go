package materials

import "errors"

var (
	// ErrMaterialNotFound возвращается, когда материал не найден
	ErrMaterialNotFound = errors.New("materials.repository: material not found")

	// ErrDecodeSnapshot возвращается при ошибке разбора снапшота
	ErrDecodeSnapshot = errors.New("materials.repository: failed to decode snapshot")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снапшота
	ErrEncodeSnapshot = errors.New("materials.repository: failed to encode snapshot")
)
