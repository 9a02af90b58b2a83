package events

import (
	"context"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	List(ctx context.Context) ([]*domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
