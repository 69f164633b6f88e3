package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aplet360/pricing-service/internal/api/handlers"
	getAvailability "github.com/aplet360/pricing-service/internal/usecase/get_availability"
)

const (
	msgMissingDates     = "from and to are required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange     = "invalid date range"
	msgRangeTooLong     = "date range is too long"
	msgPropertyNotFound = "property not found"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability
// Query params: from, to (required, YYYY-MM-DD, inclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		h.logger.Warn("GET /properties/{id}/availability - Missing dates: property_id=%s", propertyID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(propertyID, from, to)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /properties/{id}/availability - Range too long: property_id=%s, from=%s, to=%s",
				propertyID, from, to)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/availability - Invalid range: property_id=%s, from=%s, to=%s",
				propertyID, from, to)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed to get availability: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/availability - Calendar built: property_id=%s, days=%d, degraded=%t",
		propertyID, len(result.Days), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
