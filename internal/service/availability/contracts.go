package availability

import (
	"context"

	"github.com/aplet360/pricing-service/internal/domain"
)

// AvailabilitySource источник доступности (HTTP клиент, репозиторий или кэш)
type AvailabilitySource interface {
	GetAvailability(ctx context.Context, propertyID string) (*domain.AvailabilityData, error)
}

// Metrics счетчик деградаций
type Metrics interface {
	ObserveAvailabilityDegraded(policy string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
