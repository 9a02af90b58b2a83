package models

import (
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// ListEventsRequest запрос списка событий за период
// Диапазон дат трактуется в UTC, конечная дата включается целиком
type ListEventsRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// EventResponse модель события в ответе сервиса
type EventResponse struct {
	ID              int64
	Date            string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// EventListResponse список событий
type EventListResponse struct {
	Events []EventResponse
}

// FromDomainEvent конвертирует доменное событие в модель ответа
func FromDomainEvent(ev *domain.Event) EventResponse {
	return EventResponse{
		ID:              ev.ID,
		Date:            ev.Date,
		StartTime:       ev.StartTime,
		EndTime:         ev.EndTime,
		DurationMinutes: ev.DurationMinutes,
		CreatedAt:       ev.CreatedAt,
	}
}

// FromDomainEventList конвертирует список доменных событий
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	result := make([]EventResponse, len(events))
	for i, ev := range events {
		result[i] = FromDomainEvent(ev)
	}
	return &EventListResponse{Events: result}
}
