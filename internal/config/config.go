package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Источники данных о ценах и доступности
const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig       `toml:"server"`
	Logs            LogsConfig         `toml:"logs"`
	Metrics         MetricsConfig      `toml:"metrics"`
	Source          SourceConfig       `toml:"source"`
	Database        DatabaseConfig     `toml:"database"`
	PropertyService ServiceConfig      `toml:"property_service"`
	BookingService  ServiceConfig      `toml:"booking_service"`
	Cache           CacheConfig        `toml:"cache"`
	Availability    AvailabilityConfig `toml:"availability"`
}

// ServerConfig HTTP сервер; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SourceConfig откуда брать объекты и доступность: http (API бэкенда) или postgres (read-only реплика)
type SourceConfig struct {
	Kind string `toml:"kind"`
}

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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServiceConfig внешний HTTP сервис; Timeout в секундах
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// CacheConfig кэш объектов и доступности; TTL в секундах, пустой MemcachedAddr отключает общий уровень
type CacheConfig struct {
	Enabled         bool   `toml:"enabled"`
	MaxSize         int64  `toml:"max_size"`
	PricingTTL      int    `toml:"pricing_ttl"`
	AvailabilityTTL int    `toml:"availability_ttl"`
	MemcachedAddr   string `toml:"memcached_addr"`
}

// PricingTTLDuration TTL объектов с ценами
func (c CacheConfig) PricingTTLDuration() time.Duration {
	return time.Duration(c.PricingTTL) * time.Second
}

// AvailabilityTTLDuration TTL данных доступности
func (c CacheConfig) AvailabilityTTLDuration() time.Duration {
	return time.Duration(c.AvailabilityTTL) * time.Second
}

// AvailabilityConfig политика при недоступности данных о занятости
type AvailabilityConfig struct {
	FailOpen bool `toml:"fail_open"`
}

// Load читает TOML файл, затем .env (если есть) и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "pricing-service",
		},
		Source: SourceConfig{Kind: SourceHTTP},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		PropertyService: ServiceConfig{Timeout: 5},
		BookingService:  ServiceConfig{Timeout: 10},
		Cache: CacheConfig{
			MaxSize:         1000,
			PricingTTL:      300,
			AvailabilityTTL: 30,
		},
		Availability: AvailabilityConfig{FailOpen: true},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("PROPERTY_SERVICE_URL"); ok {
		c.PropertyService.URL = v
	}
	if v, ok := os.LookupEnv("BOOKING_SERVICE_URL"); ok {
		c.BookingService.URL = v
	}
	if v, ok := os.LookupEnv("MEMCACHED_ADDR"); ok {
		c.Cache.MemcachedAddr = v
	}
	if v, ok := os.LookupEnv("AVAILABILITY_FAIL_OPEN"); ok {
		failOpen, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: AVAILABILITY_FAIL_OPEN=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Availability.FailOpen = failOpen
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	switch c.Source.Kind {
	case SourceHTTP:
		if c.PropertyService.URL == "" {
			problems = append(problems, "property_service.url is required for http source")
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres source")
		}
	default:
		problems = append(problems, fmt.Sprintf("source.kind %q must be %q or %q", c.Source.Kind, SourceHTTP, SourcePostgres))
	}

	if c.BookingService.URL == "" {
		problems = append(problems, "booking_service.url is required")
	}

	if c.Cache.Enabled && (c.Cache.PricingTTL <= 0 || c.Cache.AvailabilityTTL <= 0) {
		problems = append(problems, "cache ttl values must be positive")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, fmt.Sprintf("metrics.path %q must start with /", c.Metrics.Path))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
