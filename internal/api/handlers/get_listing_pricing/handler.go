package get_listing_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aplet360/pricing-service/internal/api/handlers"
	"github.com/aplet360/pricing-service/internal/service/listings"
)

const (
	msgInvalidPropertyID = "invalid property ID"
	msgPropertyNotFound  = "property not found"
)

type Handler struct {
	service ListingsService
	logger  Logger
}

func NewHandler(service ListingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]

	result, err := h.service.GetListingPricing(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/pricing - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/pricing - Invalid property ID: %q", propertyID)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /properties/{id}/pricing - Failed to get pricing: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/pricing - Pricing retrieved: property_id=%s, priced=%t",
		propertyID, result.Pricing != nil)
	handlers.RespondJSON(w, http.StatusOK, result)
}
