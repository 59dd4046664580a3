package catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	catalogService "github.com/kmlvv/BSM-SalonService/internal/service/catalog"
	"github.com/kmlvv/BSM-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/services/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/services/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
