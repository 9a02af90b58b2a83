package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/avilov/MDC-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/avilov/MDC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgMissingTimezone = "таймзона обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone = "нераспознанная IANA таймзона"
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

// Handle GET /
// Query params: date (required, YYYY-MM-DD), timezone (required, IANA name)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET / - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем timezone из query параметров
	timezone := r.URL.Query().Get("timezone")
	if timezone == "" {
		h.logger.Warn("GET / - Missing timezone")
		handlers.RespondBadRequest(w, msgMissingTimezone)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(date, timezone))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET / - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidTimezone):
			h.logger.Warn("GET / - Invalid timezone: timezone=%s", timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET / - Invalid input: date=%s, timezone=%s", date, timezone)
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET / - Failed to get slots: date=%s, timezone=%s, error=%v",
				date, timezone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET / - Slots retrieved successfully: date=%s, timezone=%s, slots_count=%d",
		date, timezone, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
