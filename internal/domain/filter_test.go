package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(date string, start time.Time, durationMinutes int) *Event {
	return &Event{
		Date:            date,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
	}
}

func TestFilterByDate(t *testing.T) {
	events := []*Event{
		makeEvent("2024-06-10", time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC), 60),
		makeEvent("2024-06-11", time.Date(2024, 6, 11, 19, 0, 0, 0, time.UTC), 60),
		makeEvent("2024-06-10", time.Date(2024, 6, 10, 21, 0, 0, 0, time.UTC), 30),
	}

	filtered := FilterByDate(events, "2024-06-10")
	require.Len(t, filtered, 2)
	for _, ev := range filtered {
		assert.Equal(t, "2024-06-10", ev.Date)
	}

	assert.Empty(t, FilterByDate(events, "2024-06-12"))
}

func TestFilterByRangeIncludesWholeEndDate(t *testing.T) {
	late := makeEvent("2024-06-01", time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC), 60)
	after := makeEvent("2024-06-02", time.Date(2024, 6, 2, 0, 0, 1, 0, time.UTC), 60)
	events := []*Event{late, after}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	filtered := FilterByRange(events, start, end)
	require.Len(t, filtered, 1)
	assert.Same(t, late, filtered[0])
}

func TestFilterByRangeStartIsInclusive(t *testing.T) {
	onBoundary := makeEvent("2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 60)
	before := makeEvent("2024-05-31", time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC), 60)
	events := []*Event{onBoundary, before}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	filtered := FilterByRange(events, start, end)
	require.Len(t, filtered, 1)
	assert.Same(t, onBoundary, filtered[0])
}

func TestOverlapsInstant(t *testing.T) {
	// Событие 12:00-13:00 UTC
	ev := makeEvent("2024-06-10", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), 60)

	tests := []struct {
		name     string
		boundary time.Time
		want     bool
	}{
		{"boundary before event, slot ends at event start", time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC), false},
		{"boundary at event start", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), true},
		{"boundary inside event", time.Date(2024, 6, 10, 12, 30, 0, 0, time.UTC), true},
		{"boundary at event end", time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ev.OverlapsInstant(tt.boundary, 60))
		})
	}
}

func TestOverlapsInstantLegacy(t *testing.T) {
	ev := makeEvent("2024-06-10", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC), 60)

	// Широкий предикат: любое событие, заканчивающееся позже границы, занимает её
	assert.True(t, ev.OverlapsInstantLegacy(time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)))
	assert.True(t, ev.OverlapsInstantLegacy(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)))
	// Конец не строго позже границы, начало не совпадает - свободно
	assert.False(t, ev.OverlapsInstantLegacy(time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC)))
}
