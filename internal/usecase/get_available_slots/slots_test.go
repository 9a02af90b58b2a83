package get_available_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

func testSchedule() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		StartHour:           10,
		EndHour:             17,
		SlotDurationMinutes: 60,
		Timezone:            "America/Los_Angeles",
	}
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

// makeEvent строит событие по локальному времени сервиса
func makeEvent(t *testing.T, date string, hour, durationMinutes int) *domain.Event {
	t.Helper()
	loc := mustLocation(t, "America/Los_Angeles")

	day, err := time.ParseInLocation(domain.DateFormat, date, loc)
	require.NoError(t, err)

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
	return &domain.Event{
		Date:            date,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
	}
}

func TestComputeAvailableSlotsNoEvents(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")

	slots, err := computeAvailableSlots(nil, testSchedule(), "2024-06-10", la)
	require.NoError(t, err)

	// Окно 10:00-17:00 с шагом 60 минут включает границу закрытия - 8 слотов
	expected := []string{
		"2024-06-10T10:00:00-07:00",
		"2024-06-10T11:00:00-07:00",
		"2024-06-10T12:00:00-07:00",
		"2024-06-10T13:00:00-07:00",
		"2024-06-10T14:00:00-07:00",
		"2024-06-10T15:00:00-07:00",
		"2024-06-10T16:00:00-07:00",
		"2024-06-10T17:00:00-07:00",
	}
	assert.Equal(t, expected, slots)
}

func TestComputeAvailableSlotsOccupiedBoundary(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	events := []*domain.Event{makeEvent(t, "2024-06-10", 12, 60)}

	slots, err := computeAvailableSlots(events, testSchedule(), "2024-06-10", la)
	require.NoError(t, err)

	// Корректный интервальный предикат: занят только слот 12:00;
	// слот 11:00 заканчивается ровно в начале события и свободен
	assert.NotContains(t, slots, "2024-06-10T12:00:00-07:00")
	assert.Contains(t, slots, "2024-06-10T11:00:00-07:00")
	assert.Contains(t, slots, "2024-06-10T13:00:00-07:00")
	assert.Len(t, slots, 7)
}

func TestComputeAvailableSlotsLegacyOverlap(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	cfg := testSchedule()
	cfg.LegacyOverlap = true

	// Событие 12:00-13:00: по широкому предикату занята любая граница,
	// которая раньше конца события
	events := []*domain.Event{makeEvent(t, "2024-06-10", 12, 60)}

	slots, err := computeAvailableSlots(events, cfg, "2024-06-10", la)
	require.NoError(t, err)

	expected := []string{
		"2024-06-10T13:00:00-07:00",
		"2024-06-10T14:00:00-07:00",
		"2024-06-10T15:00:00-07:00",
		"2024-06-10T16:00:00-07:00",
		"2024-06-10T17:00:00-07:00",
	}
	assert.Equal(t, expected, slots)
}

func TestComputeAvailableSlotsIdempotent(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	events := []*domain.Event{
		makeEvent(t, "2024-06-10", 12, 60),
		makeEvent(t, "2024-06-10", 15, 30),
	}

	first, err := computeAvailableSlots(events, testSchedule(), "2024-06-10", la)
	require.NoError(t, err)

	second, err := computeAvailableSlots(events, testSchedule(), "2024-06-10", la)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeAvailableSlotsCrossTimezoneDisplay(t *testing.T) {
	// Слоты сервиса (Лос-Анджелес) вечером по UTC переползают на следующую
	// календарную дату в Токио: клиент из Токио, запросивший 2024-06-11,
	// должен увидеть слоты сервисного дня 2024-06-10
	tokyo := mustLocation(t, "Asia/Tokyo")

	slots, err := computeAvailableSlots(nil, testSchedule(), "2024-06-11", tokyo)
	require.NoError(t, err)

	require.Len(t, slots, 8)
	assert.Equal(t, "2024-06-11T02:00:00+09:00", slots[0])
	assert.Equal(t, "2024-06-11T09:00:00+09:00", slots[7])

	// Все слоты лежат на запрошенной дате отображения
	for _, slot := range slots {
		parsed, err := time.Parse(domain.ISOFormat, slot)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-11", parsed.In(tokyo).Format(domain.DateFormat))
	}
}

func TestComputeAvailableSlotsUTCDisplaySpansServiceDays(t *testing.T) {
	// По UTC день клиента состоит из хвоста предыдущего сервисного дня
	// (слот 17:00 PDT = 00:00 UTC) и большей части целевого
	utc := time.UTC

	slots, err := computeAvailableSlots(nil, testSchedule(), "2024-06-10", utc)
	require.NoError(t, err)

	require.Len(t, slots, 8)
	assert.Equal(t, "2024-06-10T00:00:00+00:00", slots[0])
	assert.Equal(t, "2024-06-10T23:00:00+00:00", slots[7])
}

func TestComputeAvailableSlotsSameTimezoneRoundTrip(t *testing.T) {
	// Когда таймзона отображения совпадает с сервисной, вклад соседних
	// дней пуст: выдача равна границам окна целевого дня
	la := mustLocation(t, "America/Los_Angeles")
	cfg := testSchedule()

	slots, err := computeAvailableSlots(nil, cfg, "2024-06-10", la)
	require.NoError(t, err)

	windowStart, err := domain.StartOfWindow("2024-06-10", cfg)
	require.NoError(t, err)
	windowEnd, err := domain.EndOfWindow("2024-06-10", cfg)
	require.NoError(t, err)

	step := time.Duration(cfg.SlotDurationMinutes) * time.Minute
	expected := make([]string, 0)
	for b := windowStart; !b.After(windowEnd); b = b.Add(step) {
		expected = append(expected, b.In(la).Format(domain.ISOFormat))
	}

	assert.Equal(t, expected, slots)
}

func TestComputeAvailableSlotsEmptyWindow(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	cfg := testSchedule()
	cfg.StartHour = 17
	cfg.EndHour = 10

	slots, err := computeAvailableSlots(nil, cfg, "2024-06-10", la)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlotsInvalidConfig(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	cfg := testSchedule()
	cfg.SlotDurationMinutes = 0

	_, err := computeAvailableSlots(nil, cfg, "2024-06-10", la)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

// stubEventRepo репозиторий-заглушка для тестов use case
type stubEventRepo struct {
	events  []*domain.Event
	listErr error
}

func (r *stubEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return r.events, r.listErr
}

// nopLogger логгер-заглушка
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUseCaseExecute(t *testing.T) {
	uc := NewUseCase(&stubEventRepo{}, testSchedule(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:     "2024-06-10",
		Timezone: "America/Los_Angeles",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "America/Los_Angeles", resp.Timezone)
	assert.Len(t, resp.Slots, 8)
}

func TestUseCaseExecuteValidation(t *testing.T) {
	uc := NewUseCase(&stubEventRepo{}, testSchedule(), nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing date", &Request{Timezone: "UTC"}, ErrInvalidInput},
		{"missing timezone", &Request{Date: "2024-06-10"}, ErrInvalidInput},
		{"malformed date", &Request{Date: "10.06.2024", Timezone: "UTC"}, ErrInvalidDate},
		{"unknown timezone", &Request{Date: "2024-06-10", Timezone: "Not/AZone"}, ErrInvalidTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCaseExecuteRepositoryError(t *testing.T) {
	repo := &stubEventRepo{listErr: fmt.Errorf("connection refused")}
	uc := NewUseCase(repo, testSchedule(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:     "2024-06-10",
		Timezone: "UTC",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
