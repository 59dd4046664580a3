package create_appointment

import (
	"errors"
	"net/http"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	createAppointment "github.com/kmlvv/BSM-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgTimeConflict       = "выбранное время уже занято"
	msgProviderNotFound   = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: provider=%s, date=%s, time=%s",
				req.ProviderID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrProviderNotFound):
			h.logger.Warn("POST /appointments - Provider not found: provider=%s", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput),
			errors.Is(err, createAppointment.ErrInvalidTimeFormat):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: provider=%s, error=%v",
				req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, provider=%s",
		result.ID, result.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
