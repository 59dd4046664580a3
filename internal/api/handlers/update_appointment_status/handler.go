package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	"github.com/kmlvv/BSM-SalonService/internal/api/middleware"
	updateStatus "github.com/kmlvv/BSM-SalonService/internal/usecase/update_appointment_status"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStatus       = "некорректный статус записи"
	msgAppointmentNotFound = "запись не найдена"
	msgIllegalTransition   = "недопустимая смена статуса"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		AppointmentID: id,
		Status:        req.Status,
		ActorID:       middleware.UserID(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateStatus.ErrIllegalTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Illegal transition: id=%s, target=%s",
				id, req.Status)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: id=%s, error=%v",
				id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
