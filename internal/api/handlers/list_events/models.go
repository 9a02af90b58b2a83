package list_events

import (
	"fmt"
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
	"github.com/avilov/MDC-AppointmentService/internal/service/events/models"
)

// ListEventsRequest HTTP request model
type ListEventsRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// EventResponse модель события в HTTP ответе
type EventResponse struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"duration"`
	CreatedAt       string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Даты границ диапазона парсятся как полночь UTC
func (r *ListEventsRequest) ToServiceRequest() (*models.ListEventsRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	return &models.ListEventsRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
// Ответ - плоский JSON массив событий
func FromServiceResponse(resp *models.EventListResponse) []EventResponse {
	result := make([]EventResponse, len(resp.Events))
	for i, ev := range resp.Events {
		result[i] = EventResponse{
			ID:              ev.ID,
			Date:            ev.Date,
			StartTime:       ev.StartTime.UTC().Format(domain.ISOFormat),
			EndTime:         ev.EndTime.UTC().Format(domain.ISOFormat),
			DurationMinutes: ev.DurationMinutes,
			CreatedAt:       ev.CreatedAt.UTC().Format(domain.ISOFormat),
		}
	}
	return result
}
