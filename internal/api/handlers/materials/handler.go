package materials

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	materialsService "github.com/kmlvv/BSM-SalonService/internal/service/materials"
	"github.com/kmlvv/BSM-SalonService/internal/service/materials/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMaterial    = "некорректные данные материала"
	msgMaterialNotFound   = "материал не найден"
)

type Handler struct {
	service MaterialService
	logger  Logger
}

func NewHandler(service MaterialService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/materials
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /materials - Failed to list materials: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/materials
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMaterialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /materials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, materialsService.ErrInvalidInput):
			h.logger.Warn("POST /materials - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMaterial)

		default:
			h.logger.Error("POST /materials - Failed to create material: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /materials - Material created: id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateQuantity PATCH /api/v1/materials/{id}/quantity
func (h *Handler) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /materials/{id}/quantity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateQuantity(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, materialsService.ErrMaterialNotFound):
			h.logger.Warn("PATCH /materials/{id}/quantity - Material not found: id=%s", id)
			handlers.RespondNotFound(w, msgMaterialNotFound)

		case errors.Is(err, materialsService.ErrInvalidInput):
			h.logger.Warn("PATCH /materials/{id}/quantity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMaterial)

		default:
			h.logger.Error("PATCH /materials/{id}/quantity - Failed to update quantity: id=%s, error=%v",
				id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/materials/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, materialsService.ErrMaterialNotFound):
			h.logger.Warn("DELETE /materials/{id} - Material not found: id=%s", id)
			handlers.RespondNotFound(w, msgMaterialNotFound)

		default:
			h.logger.Error("DELETE /materials/{id} - Failed to delete material: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
