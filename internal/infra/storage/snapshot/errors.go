package snapshot

import "errors"

var (
	// ErrKeyNotFound возвращается, когда снапшот по ключу никогда не записывался
	ErrKeyNotFound = errors.New("snapshot: key not found")

	// ErrSave возвращается, когда запись снапшота в долговременное хранилище не удалась.
	// После такой ошибки in-memory состояние обязано остаться неизменным.
	ErrSave = errors.New("snapshot: save failed")

	// ErrLoad возвращается при ошибке чтения снапшота
	ErrLoad = errors.New("snapshot: load failed")
)
