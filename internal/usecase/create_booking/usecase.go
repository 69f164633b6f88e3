package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
	bookingClient "github.com/aplet360/pricing-service/internal/integrations/bookingservice"
	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
)

// Исходы отправки для метрик
const (
	outcomeCreated     = "created"
	outcomeConflict    = "conflict"
	outcomeRejected    = "rejected"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	properties    PropertySource
	availability  AvailabilityService
	bookingClient BookingServiceClient
	metrics       Metrics
	timeProvider  TimeProvider
	newKey        func() string
	validate      *validator.Validate
	logger        Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(
	properties PropertySource,
	availability AvailabilityService,
	bookingClient BookingServiceClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		properties:    properties,
		availability:  availability,
		bookingClient: bookingClient,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		newKey:        uuid.NewString,
		validate:      newValidator(),
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Цена и доступность пересчитываются на сервере; окончательное решение о пересечениях
// принимает booking API.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: property=%s, checkIn=%s, checkOut=%s, guests=%d, provider=%s",
		req.PropertyID, req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat),
		req.GuestCount, req.Payment.Provider)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	checkIn := engine.NormalizeDate(req.CheckInDate)
	checkOut := engine.NormalizeDate(req.CheckOutDate)

	// 2. Проверяем даты
	if err := validateDates(checkIn, checkOut, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем объект
	property, err := uc.properties.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Считаем цену; нулевая цена без тарифа не означает бесплатное проживание
	quote := engine.CalculateTotalPrice(checkIn, checkOut, &property.Pricing)
	if !quote.Priceable() {
		uc.logger.Warn("CreateBooking: property=%s has no pricing for %d days", req.PropertyID, quote.NumberOfDays)
		return nil, ErrPricingUnavailable
	}
	if quote.TotalPrice.IsNegative() {
		uc.logger.Error("CreateBooking: property=%s has negative total=%s", req.PropertyID, quote.TotalPrice)
		return nil, ErrPricingUnavailable
	}

	if req.ExpectedTotal != nil && *req.ExpectedTotal != quote.TotalPrice {
		uc.logger.Warn("CreateBooking: property=%s price changed: expected=%s, actual=%s",
			req.PropertyID, req.ExpectedTotal, quote.TotalPrice)
		return nil, fmt.Errorf("%w: expected %s, actual %s", ErrPriceChanged, req.ExpectedTotal, quote.TotalPrice)
	}

	// 5. Проверяем доступность ночей
	lookup, err := uc.availability.Load(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to load availability for property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	if night, found := lookup.FirstUnavailableNight(checkIn, checkOut); found {
		uc.logger.Warn("CreateBooking: property=%s night %s is not available",
			req.PropertyID, night.Format(domain.DateFormat))
		uc.observe(outcomeUnavailable)
		return nil, fmt.Errorf("%w: %s", ErrDatesUnavailable, night.Format(domain.DateFormat))
	}

	// 6. Формируем заявку; после отправки она не меняется
	booking := domain.BookingRequest{
		PropertyID:       req.PropertyID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		EstimatedArrival: req.EstimatedArrival,
		GuestCount:       req.GuestCount,
		TotalPrice:       quote.TotalPrice,
		Payment: domain.Payment{
			Provider:  domain.PaymentProvider(req.Payment.Provider),
			Reference: req.Payment.Reference,
		},
		IdempotencyKey: uc.newKey(),
	}

	// 7. Отправляем в booking API
	confirmation, err := uc.bookingClient.CreateBooking(ctx, booking, req.Authorization)
	if err != nil {
		switch {
		case errors.Is(err, bookingClient.ErrConflict):
			uc.observe(outcomeConflict)
			return nil, ErrDatesUnavailable
		case errors.Is(err, bookingClient.ErrRejected):
			uc.observe(outcomeRejected)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		case errors.Is(err, bookingClient.ErrUnauthorized):
			uc.observe(outcomeRejected)
			return nil, ErrUnauthorized
		default:
			uc.observe(outcomeError)
			uc.logger.Error("CreateBooking: failed to submit booking for property=%s (key=%s): %v",
				req.PropertyID, booking.IdempotencyKey, err)
			return nil, fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
		}
	}

	uc.observe(outcomeCreated)
	uc.logger.Info("CreateBooking: booking created: id=%s, property=%s, nights=%d, total=%s",
		confirmation.ID, req.PropertyID, booking.Nights(), booking.TotalPrice)

	return &Response{
		BookingID:            confirmation.ID,
		Status:               confirmation.Status,
		PropertyID:           booking.PropertyID,
		CheckInDate:          booking.CheckInDate,
		CheckOutDate:         booking.CheckOutDate,
		EstimatedArrival:     booking.EstimatedArrival,
		GuestCount:           booking.GuestCount,
		TotalPrice:           booking.TotalPrice,
		Quote:                quote,
		IdempotencyKey:       booking.IdempotencyKey,
		AvailabilityDegraded: lookup.Degraded,
	}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBookingSubmission(outcome)
	}
}
