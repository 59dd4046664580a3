package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.repository: appointment not found")

	// ErrDecodeSnapshot возвращается при ошибке разбора снапшота
	ErrDecodeSnapshot = errors.New("appointments.repository: failed to decode snapshot")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снапшота
	ErrEncodeSnapshot = errors.New("appointments.repository: failed to encode snapshot")
)
