package get_quote

import (
	"context"

	"github.com/aplet360/pricing-service/internal/domain"
	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
)

// PropertySource источник объектов с тарифами
type PropertySource interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
}

// AvailabilityService загрузка доступности с graceful degradation
type AvailabilityService interface {
	Load(ctx context.Context, propertyID string) (*availabilityService.Lookup, error)
}

// Metrics счетчик рассчитанных цен
type Metrics interface {
	ObserveQuote(tier string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
