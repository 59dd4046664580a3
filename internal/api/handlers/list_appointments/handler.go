package list_appointments

import (
	"errors"
	"net/http"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	"github.com/kmlvv/BSM-SalonService/internal/service/appointments"
	"github.com/kmlvv/BSM-SalonService/internal/service/appointments/models"
)

const msgInvalidFilter = "некорректные параметры фильтра"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?providerId=&date=&status=&activeOnly=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}

	query := r.URL.Query()
	if v := query.Get("providerId"); v != "" {
		req.ProviderID = &v
	}
	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	req.ActiveOnly = query.Get("activeOnly") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
