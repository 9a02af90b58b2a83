package domain

import (
	"fmt"
	"time"
)

// ToZoned projects an absolute instant into the wall clock of a named IANA
// timezone. Comparisons never happen on the projected values directly; they
// are for display-date checks and output formatting only.
func ToZoned(t time.Time, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	return t.In(loc), nil
}

// StartOfWindow возвращает абсолютный момент начала рабочего окна
// на указанную календарную дату в таймзоне сервиса
func StartOfWindow(date string, cfg ScheduleConfig) (time.Time, error) {
	return windowInstant(date, cfg.StartHour, cfg)
}

// EndOfWindow возвращает абсолютный момент конца рабочего окна
// на указанную календарную дату в таймзоне сервиса
func EndOfWindow(date string, cfg ScheduleConfig) (time.Time, error) {
	return windowInstant(date, cfg.EndHour, cfg)
}

func windowInstant(date string, hour int, cfg ScheduleConfig) (time.Time, error) {
	loc, err := cfg.Location()
	if err != nil {
		return time.Time{}, err
	}

	day, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", date, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc), nil
}
