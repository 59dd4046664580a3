package clients

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	clientsService "github.com/kmlvv/BSM-SalonService/internal/service/clients"
	"github.com/kmlvv/BSM-SalonService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClient      = "некорректные данные клиента"
	msgInvalidVisit       = "некорректные данные визита"
	msgClientNotFound     = "клиент не найден"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/clients
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/clients/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, clientsService.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id} - Client not found: id=%s", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/{id} - Failed to get client: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/clients
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clientsService.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClient)

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleAddVisit POST /api/v1/clients/{id}/visits
func (h *Handler) HandleAddVisit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.AddVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/{id}/visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddVisit(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, clientsService.ErrClientNotFound):
			h.logger.Warn("POST /clients/{id}/visits - Client not found: id=%s", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clientsService.ErrInvalidInput):
			h.logger.Warn("POST /clients/{id}/visits - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVisit)

		default:
			h.logger.Error("POST /clients/{id}/visits - Failed to add visit: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
