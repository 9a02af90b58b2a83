package domain

import "errors"

var (
	// ErrInvalidTimezone возвращается при нераспознанном имени IANA таймзоны
	ErrInvalidTimezone = errors.New("domain: invalid timezone")

	// ErrInvalidConfig возвращается при некорректной конфигурации расписания
	ErrInvalidConfig = errors.New("domain: invalid schedule config")
)
