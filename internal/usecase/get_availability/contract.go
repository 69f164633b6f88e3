package get_availability

import (
	"context"

	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
)

// AvailabilityService загрузка доступности с graceful degradation
type AvailabilityService interface {
	Load(ctx context.Context, propertyID string) (*availabilityService.Lookup, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
