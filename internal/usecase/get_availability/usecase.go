package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/aplet360/pricing-service/internal/domain"
	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
)

// UseCase use case для получения календаря доступности объекта
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: property=%s, from=%s, to=%s",
		req.PropertyID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем доступность объекта
	lookup, err := uc.availability.Load(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetAvailability: failed to load availability for property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	// 3. Оцениваем каждую дату
	calendar := lookup.Calendar(req.From, req.To)
	days := make([]Day, 0, len(calendar))
	for _, d := range calendar {
		days = append(days, Day{Date: d.Date, Bookable: d.Bookable})
	}

	uc.logger.Info("GetAvailability: property=%s, %d days evaluated (degraded=%t)",
		req.PropertyID, len(days), lookup.Degraded)

	return &Response{
		PropertyID: req.PropertyID,
		From:       days[0].Date,
		To:         days[len(days)-1].Date,
		Degraded:   lookup.Degraded,
		Days:       days,
	}, nil
}
