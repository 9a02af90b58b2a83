package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() ScheduleConfig {
	return ScheduleConfig{
		StartHour:           10,
		EndHour:             17,
		SlotDurationMinutes: 60,
		Timezone:            "America/Los_Angeles",
	}
}

func TestStartOfWindow(t *testing.T) {
	start, err := StartOfWindow("2024-06-10", testConfig())
	require.NoError(t, err)

	// 10:00 PDT = 17:00 UTC
	assert.Equal(t, time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, "2024-06-10T10:00:00-07:00", start.Format(ISOFormat))
}

func TestEndOfWindow(t *testing.T) {
	end, err := EndOfWindow("2024-06-10", testConfig())
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10T17:00:00-07:00", end.Format(ISOFormat))
}

func TestWindowAcrossDSTBoundary(t *testing.T) {
	// Зимой Лос-Анджелес на PST (-08:00)
	start, err := StartOfWindow("2024-01-15", testConfig())
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15T10:00:00-08:00", start.Format(ISOFormat))
}

func TestStartOfWindowInvalidDate(t *testing.T) {
	_, err := StartOfWindow("not-a-date", testConfig())
	assert.Error(t, err)
}

func TestToZoned(t *testing.T) {
	instant := time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC)

	zoned, err := ToZoned(instant, "America/Los_Angeles")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10T12:00:00-07:00", zoned.Format(ISOFormat))
	// Проекция не меняет сам момент времени
	assert.True(t, zoned.Equal(instant))
}

func TestToZonedInvalidTimezone(t *testing.T) {
	_, err := ToZoned(time.Now(), "Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestScheduleConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ScheduleConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(c *ScheduleConfig) {},
		},
		{
			name:    "zero slot duration",
			mutate:  func(c *ScheduleConfig) { c.SlotDurationMinutes = 0 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative slot duration",
			mutate:  func(c *ScheduleConfig) { c.SlotDurationMinutes = -30 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "start hour out of range",
			mutate:  func(c *ScheduleConfig) { c.StartHour = 24 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *ScheduleConfig) { c.Timezone = "Mars/Olympus" },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsEmptyWindow(t *testing.T) {
	cfg := testConfig()
	assert.False(t, cfg.IsEmptyWindow())

	cfg.StartHour = 17
	cfg.EndHour = 17
	assert.True(t, cfg.IsEmptyWindow())

	cfg.StartHour = 18
	assert.True(t, cfg.IsEmptyWindow())
}
