package domain

import "time"

// Event represents a booked appointment in the calendar.
// StartTime and EndTime are absolute instants; Date duplicates the calendar
// date of StartTime in the service timezone for cheap date-based filtering.
type Event struct {
	ID              int64
	Date            string // YYYY-MM-DD в таймзоне сервиса
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// OverlapsInstant reports whether the event occupies the given boundary
// under the corrected half-open interval semantics: the event really
// intersects [boundary, boundary+duration).
func (e *Event) OverlapsInstant(boundary time.Time, durationMinutes int) bool {
	slotEnd := boundary.Add(time.Duration(durationMinutes) * time.Minute)
	return e.StartTime.Before(slotEnd) && e.EndTime.After(boundary)
}

// OverlapsInstantLegacy reports whether the event occupies the given boundary
// under the historical predicate: exact start match, or the event merely
// ending after the boundary. Any event that ends later than the boundary
// marks it occupied, even one that started days earlier.
func (e *Event) OverlapsInstantLegacy(boundary time.Time) bool {
	return e.StartTime.Equal(boundary) || e.EndTime.After(boundary)
}
