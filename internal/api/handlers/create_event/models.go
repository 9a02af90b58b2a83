package create_event

import (
	"fmt"
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
	createEvent "github.com/avilov/MDC-AppointmentService/internal/usecase/create_event"
)

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	StartTime string `json:"startTime"`
	Duration  int    `json:"duration"`
}

// CreateEventResponse HTTP response model
// Моменты времени отдаются в UTC, как они хранятся
type CreateEventResponse struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"duration"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *CreateEventRequest) ToUseCaseRequest() (*createEvent.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}

	return &createEvent.Request{
		StartTime:       startTime,
		DurationMinutes: r.Duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createEvent.Response) *CreateEventResponse {
	return &CreateEventResponse{
		ID:              resp.ID,
		Date:            resp.Date,
		StartTime:       resp.StartTime.UTC().Format(domain.ISOFormat),
		EndTime:         resp.EndTime.UTC().Format(domain.ISOFormat),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.UTC().Format(domain.ISOFormat),
	}
}
