package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/avilov/MDC-AppointmentService/internal/domain"
)

// Config конфигурация сервиса, загружается один раз на старте процесса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к базе данных
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки ежедневного окна доступности
type ScheduleConfig struct {
	StartHour           int    `toml:"start_hour"`
	EndHour             int    `toml:"end_hour"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	Timezone            string `toml:"timezone"`
	LegacyOverlap       bool   `toml:"legacy_overlap"`
}

// ToDomain конвертирует конфигурацию расписания в доменную модель
func (s ScheduleConfig) ToDomain() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		StartHour:           s.StartHour,
		EndHour:             s.EndHour,
		SlotDurationMinutes: s.SlotDurationMinutes,
		Timezone:            s.Timezone,
		LegacyOverlap:       s.LegacyOverlap,
	}
}

// Load читает и валидирует конфигурацию из TOML файла
// Некорректное расписание - фатальная ошибка старта
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Schedule.ToDomain().Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid schedule: %w", err)
	}

	if cfg.Server.HTTPPort <= 0 {
		return nil, fmt.Errorf("config: http port must be positive, got %d", cfg.Server.HTTPPort)
	}

	return &cfg, nil
}
