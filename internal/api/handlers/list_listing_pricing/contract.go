package list_listing_pricing

import (
	"context"

	"github.com/aplet360/pricing-service/internal/service/listings/models"
)

type ListingsService interface {
	ListListingPricing(ctx context.Context, req *models.ListPricingRequest) (*models.ListPricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
