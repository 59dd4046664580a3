package materials

import "errors"

var (
	// ErrMaterialNotFound возвращается, когда материал не найден
	ErrMaterialNotFound = errors.New("material not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
