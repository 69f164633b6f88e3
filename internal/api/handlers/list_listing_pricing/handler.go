package list_listing_pricing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aplet360/pricing-service/internal/api/handlers"
	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/service/listings"
)

const (
	msgMissingIDs   = "ids query parameter is required"
	msgInvalidOrder = "order must be asc or desc"
)

var msgTooManyIDs = fmt.Sprintf("at most %d ids are allowed", domain.MaxListingBatch)

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

// Handle GET /api/v1/listings/pricing
// Query params: ids (required, comma separated), order (asc|desc, default asc)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("ids"), query.Get("order"))
	if err != nil {
		h.logger.Warn("GET /listings/pricing - Invalid order: %q", query.Get("order"))
		handlers.RespondBadRequest(w, msgInvalidOrder)
		return
	}

	result, err := h.service.ListListingPricing(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrTooManyListings):
			h.logger.Warn("GET /listings/pricing - Too many ids: %d", len(serviceReq.PropertyIDs))
			handlers.RespondBadRequest(w, msgTooManyIDs)

		case errors.Is(err, listings.ErrInvalidInput):
			h.logger.Warn("GET /listings/pricing - Missing ids")
			handlers.RespondBadRequest(w, msgMissingIDs)

		default:
			h.logger.Error("GET /listings/pricing - Failed to get pricing: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /listings/pricing - Pricing retrieved: listings=%d, missing=%d",
		len(result.Listings), len(result.Missing))
	handlers.RespondJSON(w, http.StatusOK, result)
}
