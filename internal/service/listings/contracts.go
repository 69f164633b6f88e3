package listings

import (
	"context"

	"github.com/aplet360/pricing-service/internal/domain"
)

// PropertySource источник данных объекта (HTTP клиент, репозиторий или кэш)
type PropertySource interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
