package create_booking

import (
	"errors"
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	createBooking "github.com/aplet360/pricing-service/internal/usecase/create_booking"
	"github.com/aplet360/pricing-service/pkg/money"
	"github.com/aplet360/pricing-service/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID       string         `json:"propertyId"`
	CheckInDate      string         `json:"checkInDate"`      // "2024-06-01"
	CheckOutDate     string         `json:"checkOutDate"`     // "2024-06-04"
	EstimatedArrival string         `json:"estimatedArrival"` // "14:00"
	GuestCount       int            `json:"guestCount"`
	ExpectedTotal    *money.Amount  `json:"expectedTotal,omitempty"`
	Payment          PaymentRequest `json:"payment"`
}

// PaymentRequest данные успешного платежа
type PaymentRequest struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID            string       `json:"bookingId"`
	Status               string       `json:"status"`
	PropertyID           string       `json:"propertyId"`
	CheckInDate          string       `json:"checkInDate"`
	CheckOutDate         string       `json:"checkOutDate"`
	EstimatedArrival     string       `json:"estimatedArrival"`
	GuestCount           int          `json:"guestCount"`
	NumberOfDays         int          `json:"numberOfDays"`
	TotalPrice           money.Amount `json:"totalPrice"`
	Tier                 string       `json:"tier"`
	IdempotencyKey       string       `json:"idempotencyKey"`
	AvailabilityDegraded bool         `json:"availabilityDegraded"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат и времени)
func (r *CreateBookingRequest) ToUseCaseRequest(authorization string) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, errInvalidDate
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, errInvalidDate
	}

	arrival, err := types.NewTimeStringFromString(r.EstimatedArrival)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		PropertyID:       r.PropertyID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		EstimatedArrival: arrival,
		GuestCount:       r.GuestCount,
		ExpectedTotal:    r.ExpectedTotal,
		Payment: createBooking.Payment{
			Provider:  r.Payment.Provider,
			Reference: r.Payment.Reference,
		},
		Authorization: authorization,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:            resp.BookingID,
		Status:               resp.Status,
		PropertyID:           resp.PropertyID,
		CheckInDate:          resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:         resp.CheckOutDate.Format(domain.DateFormat),
		EstimatedArrival:     resp.EstimatedArrival.String(),
		GuestCount:           resp.GuestCount,
		NumberOfDays:         resp.Quote.NumberOfDays,
		TotalPrice:           resp.TotalPrice,
		Tier:                 string(resp.Quote.Tier),
		IdempotencyKey:       resp.IdempotencyKey,
		AvailabilityDegraded: resp.AvailabilityDegraded,
	}
}
