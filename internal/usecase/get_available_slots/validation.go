package get_available_slots

import (
	"fmt"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
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

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d",
			ErrInvalidInput, domain.MaxAppointmentDurationMinutes)
	}

	return nil
}
