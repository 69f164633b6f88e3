package create_booking

import (
	"errors"
	"net/http"

	"github.com/aplet360/pricing-service/internal/api/handlers"
	createBooking "github.com/aplet360/pricing-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid estimated arrival, expected HH:MM"
	msgMissingAuth        = "authorization header is required"
	msgInvalidInput       = "invalid booking details"
	msgInvalidDateRange   = "check-out date must be after check-in date"
	msgCheckInInPast      = "check-in date is in the past"
	msgPropertyNotFound   = "property not found"
	msgPricingUnavailable = "no pricing is available for the selected dates"
	msgPriceChanged       = "price has changed, please review the new total"
	msgDatesUnavailable   = "selected dates are no longer available"
	msgBookingRejected    = "booking was rejected"
	msgUnauthorized       = "not authorized to create bookings"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		h.logger.Warn("POST /bookings - Missing Authorization header")
		handlers.RespondUnauthorized(w, msgMissingAuth)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и времени)
	useCaseReq, err := req.ToUseCaseRequest(authorization)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: property_id=%s, error=%v", req.PropertyID, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Empty stay: property_id=%s", req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrCheckInInPast):
			h.logger.Warn("POST /bookings - Check-in in the past: property_id=%s, check_in=%s",
				req.PropertyID, req.CheckInDate)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%s", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrPricingUnavailable):
			h.logger.Warn("POST /bookings - Pricing unavailable: property_id=%s", req.PropertyID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		case errors.Is(err, createBooking.ErrPriceChanged):
			h.logger.Warn("POST /bookings - Price changed: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondConflict(w, msgPriceChanged)

		case errors.Is(err, createBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /bookings - Dates unavailable: property_id=%s, check_in=%s, check_out=%s",
				req.PropertyID, req.CheckInDate, req.CheckOutDate)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /bookings - Rejected by booking API: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingRejected)

		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized: property_id=%s", req.PropertyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, property_id=%s, total=%s",
		result.BookingID, result.PropertyID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
