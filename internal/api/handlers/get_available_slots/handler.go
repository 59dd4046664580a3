package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmlvv/BSM-SalonService/internal/api/handlers"
	getSlots "github.com/kmlvv/BSM-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDuration  = "некорректная длительность услуги"
	msgInvalidInput     = "некорректные параметры запроса"
	msgProviderNotFound = "мастер не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-slots?date=&durationMinutes=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]
	query := r.URL.Query()

	duration := 0
	if v := query.Get("durationMinutes"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /providers/{providerId}/available-slots - Invalid duration: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		ProviderID:      providerID,
		Date:            query.Get("date"),
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{providerId}/available-slots - Provider not found: provider=%s",
				providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{providerId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /providers/{providerId}/available-slots - Failed to get slots: provider=%s, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
