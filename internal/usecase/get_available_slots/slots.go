package get_available_slots

import (
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// computeAvailableSlots вычисляет свободные слоты на targetDate глазами клиента
// в таймзоне displayLoc.
//
// Слот, сгенерированный в таймзоне сервиса около полуночи, после проекции в
// таймзону клиента может попасть на соседнюю календарную дату. Поэтому
// рассматриваются три кандидатные даты сервиса: день до, целевой день и день
// после. Суперсет затем режется обратно до targetDate фильтром по дате
// отображения внутри generateDailySlots.
//
// Кандидатные даты обрабатываются по порядку, слоты внутри дня генерируются
// по возрастанию, а фильтр оставляет одну дату отображения - итоговый список
// упорядочен по времени без дополнительной сортировки.
func computeAvailableSlots(
	events []*domain.Event,
	cfg domain.ScheduleConfig,
	targetDate string,
	displayLoc *time.Location,
) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	day, err := time.Parse(domain.DateFormat, targetDate)
	if err != nil {
		return nil, err
	}

	candidateDates := []string{
		day.AddDate(0, 0, -1).Format(domain.DateFormat),
		targetDate,
		day.AddDate(0, 0, 1).Format(domain.DateFormat),
	}

	slots := make([]string, 0)
	for _, serviceDate := range candidateDates {
		dailyEvents := domain.FilterByDate(events, serviceDate)

		daily, err := generateDailySlots(dailyEvents, cfg, serviceDate, displayLoc, targetDate)
		if err != nil {
			return nil, err
		}
		slots = append(slots, daily...)
	}

	return slots, nil
}

// generateDailySlots генерирует свободные слоты одного дня сервиса.
// Границы идут от начала рабочего окна с шагом slotDuration, включая границу
// ровно во время закрытия - слот на само закрытие предлагается.
func generateDailySlots(
	events []*domain.Event,
	cfg domain.ScheduleConfig,
	serviceDate string,
	displayLoc *time.Location,
	targetDate string,
) ([]string, error) {
	slots := make([]string, 0)

	if cfg.IsEmptyWindow() {
		return slots, nil
	}

	windowStart, err := domain.StartOfWindow(serviceDate, cfg)
	if err != nil {
		return nil, err
	}

	windowEnd, err := domain.EndOfWindow(serviceDate, cfg)
	if err != nil {
		return nil, err
	}

	step := time.Duration(cfg.SlotDurationMinutes) * time.Minute

	for boundary := windowStart; !boundary.After(windowEnd); boundary = boundary.Add(step) {
		if isBoundaryOccupied(events, boundary, cfg) {
			continue
		}

		// Слот попадает в выдачу, только если его календарная дата
		// в таймзоне клиента совпадает с запрошенной
		display := boundary.In(displayLoc)
		if display.Format(domain.DateFormat) != targetDate {
			continue
		}

		slots = append(slots, display.Format(domain.ISOFormat))
	}

	return slots, nil
}

// isBoundaryOccupied проверяет, занята ли граница каким-либо событием.
// Предикат выбирается конфигурацией: исторический широкий (любое событие,
// заканчивающееся позже границы, занимает её) или корректное пересечение
// полуоткрытых интервалов.
func isBoundaryOccupied(events []*domain.Event, boundary time.Time, cfg domain.ScheduleConfig) bool {
	for _, ev := range events {
		if cfg.LegacyOverlap {
			if ev.OverlapsInstantLegacy(boundary) {
				return true
			}
			continue
		}
		if ev.OverlapsInstant(boundary, cfg.SlotDurationMinutes) {
			return true
		}
	}
	return false
}
