package create_appointment

import (
	"fmt"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Формат времени перепроверяется здесь, даже если UI уже отклонил мусор:
// ядро обязано упасть с ошибкой, а не молча распарсить неверно.
func validateRequest(req *Request) error {
	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d",
			ErrInvalidInput, domain.MaxAppointmentDurationMinutes)
	}
	if req.DurationMinutes > 0 && req.DurationMinutes < domain.MinAppointmentDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be at least %d",
			ErrInvalidInput, domain.MinAppointmentDurationMinutes)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	return nil
}

// effectiveDuration нормализует отсутствующую длительность к дефолтным 60 минутам
func effectiveDuration(durationMinutes int) int {
	if durationMinutes <= 0 {
		return domain.DefaultDurationMinutes
	}
	return durationMinutes
}
