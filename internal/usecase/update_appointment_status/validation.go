package update_appointment_status

import (
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID == "" {
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	if req.Status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	target := domain.AppointmentStatus(req.Status)
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	if target == domain.StatusScheduled {
		// В scheduled запись попадает только при создании
		return fmt.Errorf("%w: cannot transition back to %q", ErrInvalidInput, req.Status)
	}

	return nil
}
