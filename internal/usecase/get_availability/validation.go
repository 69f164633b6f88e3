package get_availability

import (
	"fmt"
	"strings"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PropertyID) == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from := engine.NormalizeDate(req.From)
	to := engine.NormalizeDate(req.To)
	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	// from и to включительно
	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxCalendarDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, domain.MaxCalendarDays)
	}

	return nil
}
