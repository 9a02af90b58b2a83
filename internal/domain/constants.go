package domain

// Time format constants
const (
	DateFormat = "2006-01-02"                // YYYY-MM-DD
	ISOFormat  = "2006-01-02T15:04:05-07:00" // ISO-8601 с офсетом таймзоны
)
