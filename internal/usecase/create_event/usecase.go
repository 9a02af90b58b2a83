package create_event

import (
	"context"
	"fmt"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// UseCase use case для создания события (бронирования)
type UseCase struct {
	eventRepo    EventRepository
	schedule     domain.ScheduleConfig
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	schedule domain.ScheduleConfig,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		schedule:     schedule,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания события
// Последовательность "прочитать все события - разрешить конфликты - вставить"
// выполняется в сериализуемой транзакции с блокировкой выборки, чтобы две
// конкурентные заявки на пересекающееся время не прошли обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvent: startTime=%s, duration=%d",
		req.StartTime.Format(domain.ISOFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Event

	// 3. Решение и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем все события с блокировкой
		events, err := uc.eventRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to list events: %v", err)
			return fmt.Errorf("%w: failed to list events: %v", ErrInternal, err)
		}

		// 3.2. Проверяем заявку и строим событие
		event, err := proposeEvent(req.StartTime, req.DurationMinutes, events, uc.schedule, now)
		if err != nil {
			uc.logger.Warn("CreateEvent: proposal rejected: %v", err)
			return err
		}

		// 3.3. Сохраняем событие
		created, err := uc.eventRepo.Create(txCtx, event)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateEvent: successfully created event id=%d on %s", result.ID, result.Date)

	return &Response{
		ID:              result.ID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
