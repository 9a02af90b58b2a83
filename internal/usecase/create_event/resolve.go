package create_event

import (
	"time"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// proposeEvent решает, допустима ли заявка на бронирование, и строит событие.
//
// Чистая функция без побочных эффектов: ничего не сохраняет и не читает часы -
// текущий момент передается параметром. Правила проверяются по порядку, первое
// сработавшее определяет отказ:
//  1. ErrPastTime    - начало строго раньше now
//  2. ErrOutsideHours - начало до начала или после конца рабочего окна того дня
//     (день определяется проекцией начала в таймзону сервиса)
//  3. ErrConflict    - пересечение с существующим событием
//
// Начало ровно в конец окна допустимо: слот на время закрытия предлагается
// калькулятором и должен приниматься резолвером.
func proposeEvent(
	startTime time.Time,
	durationMinutes int,
	events []*domain.Event,
	cfg domain.ScheduleConfig,
	now time.Time,
) (*domain.Event, error) {
	if startTime.Before(now) {
		return nil, ErrPastTime
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// Календарная дата начала в таймзоне сервиса
	date := startTime.In(loc).Format(domain.DateFormat)

	windowStart, err := domain.StartOfWindow(date, cfg)
	if err != nil {
		return nil, err
	}
	windowEnd, err := domain.EndOfWindow(date, cfg)
	if err != nil {
		return nil, err
	}

	if startTime.Before(windowStart) || startTime.After(windowEnd) {
		return nil, ErrOutsideHours
	}

	// Конфликт проверяется по всему множеству событий, не только по целевой дате
	if hasConflict(startTime, durationMinutes, events, cfg) {
		return nil, ErrConflict
	}

	return &domain.Event{
		Date:            date,
		StartTime:       startTime,
		EndTime:         startTime.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
	}, nil
}

// hasConflict проверяет пересечение заявки с существующими событиями.
// Зеркалит предикат занятости границы из калькулятора слотов: режим
// (исторический широкий или корректный интервальный) задается той же
// конфигурацией, чтобы калькулятор и резолвер оставались согласованными.
func hasConflict(startTime time.Time, durationMinutes int, events []*domain.Event, cfg domain.ScheduleConfig) bool {
	for _, ev := range events {
		if cfg.LegacyOverlap {
			if ev.StartTime.Equal(startTime) || startTime.Before(ev.EndTime) {
				return true
			}
			continue
		}
		if ev.OverlapsInstant(startTime, durationMinutes) {
			return true
		}
	}
	return false
}
