package list_events

import (
	"errors"
	"net/http"

	"github.com/avilov/MDC-AppointmentService/internal/api/handlers"
	eventsService "github.com/avilov/MDC-AppointmentService/internal/service/events"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "необходимы поля startDate и endDate"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "конечная дата раньше начальной"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /all-events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ListEventsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /all-events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.StartDate == "" || req.EndDate == "" {
		h.logger.Warn("POST /all-events - Missing startDate or endDate")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом дат)
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /all-events - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	result, err := h.service.ListByRange(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrInvalidTimeRange):
			h.logger.Warn("POST /all-events - Invalid range: start=%s, end=%s",
				req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, eventsService.ErrInvalidInput):
			h.logger.Warn("POST /all-events - Invalid input: start=%s, end=%s",
				req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /all-events - Failed to list events: start=%s, end=%s, error=%v",
				req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /all-events - Events retrieved successfully: start=%s, end=%s, events_count=%d",
		req.StartDate, req.EndDate, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
