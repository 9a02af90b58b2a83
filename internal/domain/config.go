package domain

import (
	"fmt"
	"time"
)

// ScheduleConfig describes the single daily availability window of the
// service, identical every day, in the service's own timezone.
// Immutable after process start; threaded explicitly into every core call.
type ScheduleConfig struct {
	StartHour           int
	EndHour             int
	SlotDurationMinutes int
	Timezone            string

	// LegacyOverlap restores the historical broad occupied-boundary
	// predicate (see Event.OverlapsInstantLegacy). Off by default.
	LegacyOverlap bool
}

// Validate проверяет конфигурацию расписания
// Ошибки конфигурации фатальны на старте процесса
func (c ScheduleConfig) Validate() error {
	if c.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidConfig, c.SlotDurationMinutes)
	}
	if c.StartHour < 0 || c.StartHour > 23 {
		return fmt.Errorf("%w: start hour must be in [0, 23], got %d", ErrInvalidConfig, c.StartHour)
	}
	if c.EndHour < 0 || c.EndHour > 23 {
		return fmt.Errorf("%w: end hour must be in [0, 23], got %d", ErrInvalidConfig, c.EndHour)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location возвращает *time.Location таймзоны сервиса
func (c ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
	}
	return loc, nil
}

// IsEmptyWindow reports whether the availability window contains no slots.
func (c ScheduleConfig) IsEmptyWindow() bool {
	return c.StartHour >= c.EndHour
}
