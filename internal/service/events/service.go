package events

import (
	"context"
	"fmt"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
	"github.com/avilov/MDC-AppointmentService/internal/service/events/models"
)

// Service сервис для чтения событий календаря
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// ListByRange возвращает события, начинающиеся в диапазоне дат
// Конечная дата включается целиком: событие в 23:30 последнего дня попадает в выборку
func (s *Service) ListByRange(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error) {
	s.logger.Info("ListByRange: fetching events for period=%s to %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		s.logger.Warn("ListByRange: missing period boundaries")
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("ListByRange: end date %s before start date %s",
			req.EndDate.Format(domain.DateFormat), req.StartDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidTimeRange)
	}

	allEvents, err := s.eventRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByRange - repository error: %v", ErrInternal, err)
	}

	filtered := domain.FilterByRange(allEvents, req.StartDate, req.EndDate)

	s.logger.Info("ListByRange: successfully fetched %d of %d events", len(filtered), len(allEvents))
	return models.FromDomainEventList(filtered), nil
}
