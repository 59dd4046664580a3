package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// Поддерживаемые бэкенды снапшотного хранилища
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var (
	// ErrUnknownBackend возвращается при неизвестном значении storage.backend
	ErrUnknownBackend = errors.New("config: unknown storage backend")

	// ErrInvalidSchedule возвращается при некорректной секции [schedule]
	ErrInvalidSchedule = errors.New("config: invalid schedule section")
)

// Config конфигурация сервиса, загружается из TOML-файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// StorageConfig выбор и настройки бэкенда снапшотов
type StorageConfig struct {
	Backend  string         `toml:"backend"` // file | postgres | redis
	File     FileStorage    `toml:"file"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

// FileStorage настройки файлового бэкенда
type FileStorage struct {
	Dir string `toml:"dir"`
}

// PostgresConfig настройки подключения к PostgreSQL
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`  // пустая строка = stdout
	Level string `toml:"level"` // debug | info | warn | error
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочие часы салона и шаг сетки слотов
type ScheduleConfig struct {
	OpenTime        string `toml:"open_time"`         // HH:MM
	CloseTime       string `toml:"close_time"`        // HH:MM, конец последнего бронируемого интервала
	SlotStepMinutes int    `toml:"slot_step_minutes"` // шаг сетки кандидатных слотов
}

// Load читает конфигурацию из TOML-файла, подставляет дефолты и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.File.Dir == "" {
		c.Storage.File.Dir = "data"
	}
	if c.Storage.Postgres.SSLMode == "" {
		c.Storage.Postgres.SSLMode = "disable"
	}
	if c.Storage.Postgres.MaxOpenConns == 0 {
		c.Storage.Postgres.MaxOpenConns = 10
	}
	if c.Storage.Postgres.MaxIdleConns == 0 {
		c.Storage.Postgres.MaxIdleConns = 5
	}
	if c.Storage.Postgres.ConnMaxLifetime == 0 {
		c.Storage.Postgres.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "bsm-salon-service"
	}

	if c.Schedule.OpenTime == "" {
		c.Schedule.OpenTime = domain.DefaultOpenTime
	}
	if c.Schedule.CloseTime == "" {
		c.Schedule.CloseTime = domain.DefaultCloseTime
	}
	if c.Schedule.SlotStepMinutes == 0 {
		c.Schedule.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}

	open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: open_time: %v", ErrInvalidSchedule, err)
	}
	closeTime, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: close_time: %v", ErrInvalidSchedule, err)
	}
	if !open.IsBefore(closeTime) {
		return fmt.Errorf("%w: open_time must be before close_time", ErrInvalidSchedule)
	}
	if c.Schedule.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: slot_step_minutes must be positive", ErrInvalidSchedule)
	}

	return nil
}
