package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("types: invalid time string format")

// TimeString время в формате "HH:MM" (24-часовой формат, локальное время без таймзоны).
// Хранится как строка, чтобы формат в снапшотах оставался стабильным.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывая секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и валидирует строку времени.
// Результат нормализуется к виду с ведущими нулями ("9:05" -> "09:05").
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	total, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Validate проверяет, что строка состоит из двух числовых частей HH:MM,
// где HH в [0,23], а MM в [0,59]
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour out of range in %q", ErrInvalidTimeFormat, string(t))
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute out of range in %q", ErrInvalidTimeFormat, string(t))
	}

	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return string(t) == ""
}

// Minutes возвращает смещение в минутах от начала суток (hour*60 + minute)
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parts := strings.Split(string(t), ":")
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute, nil
}

// AddMinutes возвращает время, сдвинутое на minutes вперед.
// Выход за пределы суток считается ошибкой формата.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeFormat, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Невалидные значения всегда сравниваются как false.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

func (t TimeString) String() string {
	return string(t)
}
