package list_finance_records

import (
	"errors"
	"net/http"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	"github.com/kmlvv/BSM-SalonService/internal/api/middleware"
	"github.com/kmlvv/BSM-SalonService/internal/service/finances"
	"github.com/kmlvv/BSM-SalonService/internal/service/finances/models"
)

const msgInvalidFilter = "некорректные параметры фильтра"

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/finances?type=&dateFrom=&dateTo=
// Вызывающий видит общие записи и собственные; чужие личные скрыты.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRecordsRequest{}

	if viewerID := middleware.UserID(r); viewerID != "" {
		req.ViewerID = &viewerID
	}

	query := r.URL.Query()
	if v := query.Get("type"); v != "" {
		req.Type = &v
	}
	if v := query.Get("dateFrom"); v != "" {
		req.DateFrom = &v
	}
	if v := query.Get("dateTo"); v != "" {
		req.DateTo = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, finances.ErrInvalidInput):
			h.logger.Warn("GET /finances - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /finances - Failed to list records: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
