package cache

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/aplet360/pricing-service/internal/domain"
)

// RemoteStore общий уровень кэша; ему удовлетворяет *memcache.Client
type RemoteStore interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

// Metrics счетчики попаданий в кэш
type Metrics interface {
	ObserveCache(level, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PropertySource источник объектов (HTTP клиент или репозиторий)
type PropertySource interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
}

// AvailabilitySource источник доступности (HTTP клиент или репозиторий)
type AvailabilitySource interface {
	GetAvailability(ctx context.Context, propertyID string) (*domain.AvailabilityData, error)
}
