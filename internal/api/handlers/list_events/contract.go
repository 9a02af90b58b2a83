package list_events

import (
	"context"

	"github.com/avilov/MDC-AppointmentService/internal/service/events/models"
)

type EventsService interface {
	ListByRange(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
