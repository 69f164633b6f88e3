package create_booking

import (
	"context"
	"time"

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

// BookingServiceClient интерфейс клиента booking API
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest, authorization string) (*domain.BookingConfirmation, error)
}

// Metrics счетчик отправленных бронирований
type Metrics interface {
	ObserveBookingSubmission(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
