package reports

import (
	"errors"
	"net/http"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	reportsService "github.com/kmlvv/BSM-SalonService/internal/service/reports"
	"github.com/kmlvv/BSM-SalonService/internal/service/reports/models"
)

const msgInvalidPeriod = "некорректный период отчета"

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/summary?dateFrom=&dateTo=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SummaryRequest{}

	query := r.URL.Query()
	if v := query.Get("dateFrom"); v != "" {
		req.DateFrom = &v
	}
	if v := query.Get("dateTo"); v != "" {
		req.DateTo = &v
	}

	result, err := h.service.Summary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidInput):
			h.logger.Warn("GET /reports/summary - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/summary - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
