package create_event

import (
	"context"
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	List(ctx context.Context) ([]*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
}

// TransactionManager интерфейс для управления транзакциями
// Сериализует последовательность "прочитать события - принять решение - вставить":
// без внешней точки сериализации две конкурентные заявки на пересекающееся время
// могут обе пройти проверку по устаревшему снимку
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
