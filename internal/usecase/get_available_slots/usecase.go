package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// UseCase use case для получения свободных слотов
type UseCase struct {
	eventRepo EventRepository
	schedule  domain.ScheduleConfig
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	schedule domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		schedule:  schedule,
		logger:    logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, timezone=%s", req.Date, req.Timezone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем таймзону отображения
	displayLoc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unknown timezone %q", req.Timezone)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	// 3. Получаем все события
	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list events: %v", err)
		return nil, fmt.Errorf("%w: failed to list events: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные слоты
	slots, err := computeAvailableSlots(events, uc.schedule, req.Date, displayLoc)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			// Конфигурация валидируется на старте процесса, сюда попадать не должна
			uc.logger.Error("GetAvailableSlots: invalid schedule config: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for date=%s, timezone=%s",
		len(slots), req.Date, req.Timezone)

	return &Response{
		Date:     req.Date,
		Timezone: req.Timezone,
		Slots:    slots,
	}, nil
}
