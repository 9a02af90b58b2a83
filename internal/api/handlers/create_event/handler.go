package create_event

import (
	"errors"
	"net/http"

	"github.com/avilov/MDC-AppointmentService/internal/api/handlers"
	createEvent "github.com/avilov/MDC-AppointmentService/internal/usecase/create_event"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "необходимы поля startTime и duration"
	msgInvalidStartTime   = "некорректный формат startTime, ожидается ISO-8601"
	msgPastTime           = "время начала уже прошло"
	msgOutsideHours       = "время начала вне рабочих часов"
	msgConflict           = "время пересекается с существующей записью"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /create-event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-event - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.StartTime == "" || req.Duration == 0 {
		h.logger.Warn("POST /create-event - Missing startTime or duration")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /create-event - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrConflict):
			h.logger.Warn("POST /create-event - Conflict: startTime=%s", req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgConflict)

		case errors.Is(err, createEvent.ErrPastTime):
			h.logger.Warn("POST /create-event - Past time: startTime=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createEvent.ErrOutsideHours):
			h.logger.Warn("POST /create-event - Outside working hours: startTime=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /create-event - Invalid input: startTime=%s, duration=%d",
				req.StartTime, req.Duration)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /create-event - Failed to create event: startTime=%s, error=%v",
				req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /create-event - Event created successfully: event_id=%d, date=%s",
		result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
