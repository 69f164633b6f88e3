package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aplet360/pricing-service/internal/api/handlers"
	getQuote "github.com/aplet360/pricing-service/internal/usecase/get_quote"
)

const (
	msgMissingDates     = "checkIn and checkOut are required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequest   = "invalid quote request"
	msgPropertyNotFound = "property not found"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/quote
// Query params: checkIn, checkOut (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]

	checkIn := r.URL.Query().Get("checkIn")
	checkOut := r.URL.Query().Get("checkOut")
	if checkIn == "" || checkOut == "" {
		h.logger.Warn("GET /properties/{id}/quote - Missing dates: property_id=%s", propertyID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(propertyID, checkIn, checkOut)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/quote - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/quote - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/quote - Invalid request: property_id=%s, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /properties/{id}/quote - Failed to compute quote: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/quote - Quote computed: property_id=%s, days=%d, total=%s, bookable=%t",
		propertyID, result.Quote.NumberOfDays, result.Quote.TotalPrice, result.Bookable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
