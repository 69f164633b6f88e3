package get_listing_pricing

import (
	"context"

	"github.com/aplet360/pricing-service/internal/service/listings/models"
)

type ListingsService interface {
	GetListingPricing(ctx context.Context, propertyID string) (*models.ListingPricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
