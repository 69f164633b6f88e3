package bookingservice

import (
	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/money"
	"github.com/aplet360/pricing-service/pkg/types"
)

// CreateBookingRequest тело POST /booking
type CreateBookingRequest struct {
	PropertyID       string           `json:"property_id"`
	CheckInDate      string           `json:"check_in_date"`
	CheckOutDate     string           `json:"check_out_date"`
	EstimatedArrival types.TimeString `json:"estimated_arrival"`
	GuestCount       int              `json:"guest_count"`
	TotalPrice       money.Amount     `json:"total_price"`
	Payment          Payment          `json:"payment"`
}

type Payment struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}

// CreateBookingResponse ответ booking API
type CreateBookingResponse struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	Status  string `json:"status"`
}

// ErrorResponse модель ошибки от booking API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newCreateBookingRequest(req domain.BookingRequest) CreateBookingRequest {
	return CreateBookingRequest{
		PropertyID:       req.PropertyID,
		CheckInDate:      req.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     req.CheckOutDate.Format(domain.DateFormat),
		EstimatedArrival: req.EstimatedArrival,
		GuestCount:       req.GuestCount,
		TotalPrice:       req.TotalPrice,
		Payment: Payment{
			Provider:  string(req.Payment.Provider),
			Reference: req.Payment.Reference,
		},
	}
}

func (r CreateBookingResponse) toDomain() *domain.BookingConfirmation {
	id := r.ID
	if id == "" {
		id = r.MongoID
	}
	return &domain.BookingConfirmation{ID: id, Status: r.Status}
}
