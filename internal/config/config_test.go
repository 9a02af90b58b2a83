package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 3000
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "test"
password = "test"
dbname = "test"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = false
path = "/metrics"
service_name = "test"

[schedule]
start_hour = 10
end_hour = 17
slot_duration_minutes = 60
timezone = "America/Los_Angeles"
legacy_overlap = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=test password=test dbname=test sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, 10, cfg.Schedule.StartHour)
	assert.Equal(t, 17, cfg.Schedule.EndHour)
	assert.Equal(t, 60, cfg.Schedule.SlotDurationMinutes)
	assert.Equal(t, "America/Los_Angeles", cfg.Schedule.Timezone)
	assert.False(t, cfg.Schedule.LegacyOverlap)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidSchedule(t *testing.T) {
	cfg := `
[server]
http_port = 3000

[schedule]
start_hour = 10
end_hour = 17
slot_duration_minutes = 0
timezone = "America/Los_Angeles"
`
	_, err := Load(writeConfig(t, cfg))
	require.Error(t, err)
}

func TestLoadUnknownTimezone(t *testing.T) {
	cfg := `
[server]
http_port = 3000

[schedule]
start_hour = 10
end_hour = 17
slot_duration_minutes = 60
timezone = "Mars/Olympus"
`
	_, err := Load(writeConfig(t, cfg))
	assert.Error(t, err)
}

func TestScheduleToDomain(t *testing.T) {
	s := ScheduleConfig{
		StartHour:           9,
		EndHour:             18,
		SlotDurationMinutes: 30,
		Timezone:            "Europe/Moscow",
		LegacyOverlap:       true,
	}

	d := s.ToDomain()
	assert.Equal(t, 9, d.StartHour)
	assert.Equal(t, 18, d.EndHour)
	assert.Equal(t, 30, d.SlotDurationMinutes)
	assert.Equal(t, "Europe/Moscow", d.Timezone)
	assert.True(t, d.LegacyOverlap)
}
