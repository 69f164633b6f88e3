package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
	"github.com/aplet360/pricing-service/pkg/ptr"
)

// UseCase use case для расчета стоимости проживания
type UseCase struct {
	properties   PropertySource
	availability AvailabilityService
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(
	properties PropertySource,
	availability AvailabilityService,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		properties:   properties,
		availability: availability,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: property=%s, checkIn=%s, checkOut=%s",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект с тарифами
	property, err := uc.properties.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			uc.logger.Warn("GetQuote: property=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetQuote: failed to get property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Считаем цену
	checkIn := engine.NormalizeDate(req.CheckIn)
	checkOut := engine.NormalizeDate(req.CheckOut)
	quote := engine.CalculateTotalPrice(checkIn, checkOut, &property.Pricing)

	resp := &Response{
		PropertyID: req.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Quote:      quote,
	}

	// Пустой диапазон: нулевой результат, доступность не нужна
	if quote.NumberOfDays == 0 {
		uc.logger.Info("GetQuote: property=%s, empty range", req.PropertyID)
		return resp, nil
	}

	if uc.metrics != nil {
		uc.metrics.ObserveQuote(string(quote.Tier))
	}

	// 4. Проверяем доступность ночей
	lookup, err := uc.availability.Load(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetQuote: failed to load availability for property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	resp.AvailabilityDegraded = lookup.Degraded
	resp.Bookable = lookup.IsRangeBookable(checkIn, checkOut)
	if !resp.Bookable {
		if night, found := lookup.FirstUnavailableNight(checkIn, checkOut); found {
			resp.FirstUnavailableNight = ptr.Ptr(night)
		}
	}

	uc.logger.Info("GetQuote: property=%s, days=%d, tier=%s, total=%s, bookable=%t",
		req.PropertyID, quote.NumberOfDays, quote.Tier, quote.TotalPrice, resp.Bookable)

	return resp, nil
}
