package create_finance_record

import (
	"errors"
	"net/http"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	"github.com/kmlvv/BSM-SalonService/internal/api/middleware"
	"github.com/kmlvv/BSM-SalonService/internal/service/finances"
	"github.com/kmlvv/BSM-SalonService/internal/service/finances/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRecord      = "некорректные данные финансовой записи"
	msgInvalidCategory    = "категория не соответствует типу записи"
)

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

// Handle POST /api/v1/finances
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /finances - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.CreatedBy == "" {
		req.CreatedBy = middleware.UserID(r)
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, finances.ErrInvalidCategory):
			h.logger.Warn("POST /finances - Invalid category: type=%s, category=%s", req.Type, req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, finances.ErrInvalidInput):
			h.logger.Warn("POST /finances - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecord)

		default:
			h.logger.Error("POST /finances - Failed to create record: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /finances - Record created: id=%s, type=%s, amount=%.2f",
		result.ID, result.Type, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
