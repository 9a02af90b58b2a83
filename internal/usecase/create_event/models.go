package create_event

import "time"

// Request модель запроса на создание события
type Request struct {
	StartTime       time.Time // Абсолютный момент начала
	DurationMinutes int       // Длительность в минутах
}

// Response модель созданного события
type Response struct {
	ID              int64
	Date            string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	CreatedAt       time.Time
}
