package list_listing_pricing

import (
	"strings"

	"github.com/aplet360/pricing-service/internal/service/listings/models"
)

// ToServiceRequest конвертирует query параметры в запрос сервиса.
// ids передаются через запятую: ?ids=a,b,c
func ToServiceRequest(ids, order string) (*models.ListPricingRequest, error) {
	parsedOrder, err := models.ToOrder(order)
	if err != nil {
		return nil, err
	}

	var propertyIDs []string
	if ids != "" {
		propertyIDs = strings.Split(ids, ",")
	}

	return &models.ListPricingRequest{
		PropertyIDs: propertyIDs,
		Order:       parsedOrder,
	}, nil
}
