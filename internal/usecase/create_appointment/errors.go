package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidTimeFormat возвращается при некорректной строке времени HH:MM
	ErrInvalidTimeFormat = errors.New("create_appointment: invalid time format")

	// ErrTimeConflict возвращается, когда кандидатный интервал пересекается
	// с активной записью того же мастера на ту же дату.
	// Это ожидаемый исход, а не сбой: вызывающий предлагает другое время.
	ErrTimeConflict = errors.New("create_appointment: time slot conflict")

	// ErrProviderNotFound возвращается, когда мастер не найден
	ErrProviderNotFound = errors.New("create_appointment: provider not found")

	// ErrServiceNotFound возвращается, когда услуга каталога не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (в том числе при отказе записи снапшота)
	ErrInternal = errors.New("create_appointment: internal error")
)
