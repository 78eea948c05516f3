package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих файл конфигурации
const EnvPrefix = "COURTS"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"SERVER"`
	Database DatabaseConfig `toml:"database" envconfig:"DATABASE"`
	Logs     LogsConfig     `toml:"logs" envconfig:"LOGS"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"METRICS"`
	Events   EventsConfig   `toml:"events" envconfig:"EVENTS"`
	Booking  BookingConfig  `toml:"booking" envconfig:"BOOKING"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig подключение к БД.
// Для sqlite используется Path, для postgres параметры подключения.
type DatabaseConfig struct {
	Driver          string `toml:"driver" envconfig:"DRIVER"`
	Host            string `toml:"host" envconfig:"HOST"`
	Port            int    `toml:"port" envconfig:"PORT"`
	User            string `toml:"user" envconfig:"USER"`
	Password        string `toml:"password" envconfig:"PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	Path            string `toml:"path" envconfig:"PATH"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
	AutoMigrate     bool   `toml:"auto_migrate" envconfig:"AUTO_MIGRATE"`
}

// DSN строка подключения для выбранного драйвера
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		if c.Path == ":memory:" {
			return c.Path
		}
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.Path)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file" envconfig:"FILE"`
	Level string `toml:"level" envconfig:"LEVEL"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Path        string `toml:"path" envconfig:"PATH"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// EventsConfig публикация событий бронирований в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled" envconfig:"ENABLED"`
	URL      string `toml:"url" envconfig:"URL"`
	Exchange string `toml:"exchange" envconfig:"EXCHANGE"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	// Timezone часовой пояс, в котором определяется "сегодня" для проверки прошедших слотов
	Timezone string `toml:"timezone" envconfig:"TIMEZONE"`
}

// Location часовой пояс бронирований
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Default значения по умолчанию, поверх которых читается файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "court-booking",
		},
		Events: EventsConfig{
			Exchange: "court-booking.events",
		},
		Booking: BookingConfig{
			Timezone: "UTC",
		},
	}
}

// Load читает файл конфигурации, затем .env (если есть) и переменные окружения с префиксом COURTS.
// Отсутствующий файл не ошибка: тогда используются значения по умолчанию и окружение.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
			problems = append(problems, "database.host, database.dbname and database.user are required for postgres")
		}
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database.path is required for sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported (postgres, sqlite)", c.Database.Driver))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if c.Events.Enabled && c.Events.URL == "" {
		problems = append(problems, "events.url is required when events are enabled")
	}

	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
