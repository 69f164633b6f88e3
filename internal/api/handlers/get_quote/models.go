package get_quote

import (
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
	getQuote "github.com/aplet360/pricing-service/internal/usecase/get_quote"
	"github.com/aplet360/pricing-service/pkg/money"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PropertyID            string             `json:"propertyId"`
	CheckIn               string             `json:"checkIn"`
	CheckOut              string             `json:"checkOut"`
	NumberOfDays          int                `json:"numberOfDays"`
	TotalPrice            money.Amount       `json:"totalPrice"`
	Priceable             bool               `json:"priceable"`
	Breakdown             *BreakdownResponse `json:"breakdown,omitempty"`
	Bookable              bool               `json:"bookable"`
	FirstUnavailableNight *string            `json:"firstUnavailableNight,omitempty"`
	AvailabilityDegraded  bool               `json:"availabilityDegraded"`
}

// BreakdownResponse разбивка суммы по тарифу
type BreakdownResponse struct {
	Tier            string       `json:"tier"`
	Units           int          `json:"units"`
	UnitPrice       money.Amount `json:"unitPrice"`
	RemainderDays   int          `json:"remainderDays"`
	RemainderRate   money.Amount `json:"remainderRate"`
	CleaningFee     money.Amount `json:"cleaningFee"`
	SecurityDeposit money.Amount `json:"securityDeposit"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(propertyID, checkIn, checkOut string) (*getQuote.Request, error) {
	checkInDate, err := time.Parse(domain.DateFormat, checkIn)
	if err != nil {
		return nil, err
	}

	checkOutDate, err := time.Parse(domain.DateFormat, checkOut)
	if err != nil {
		return nil, err
	}

	return &getQuote.Request{
		PropertyID: propertyID,
		CheckIn:    checkInDate,
		CheckOut:   checkOutDate,
	}, nil
}

// FromQuote разбивка цены; nil, если тариф не применен
func FromQuote(q engine.Quote) *BreakdownResponse {
	if !q.Priceable() {
		return nil
	}
	return &BreakdownResponse{
		Tier:            string(q.Tier),
		Units:           q.Units,
		UnitPrice:       q.UnitPrice,
		RemainderDays:   q.RemainderDays,
		RemainderRate:   q.RemainderRate,
		CleaningFee:     q.CleaningFee,
		SecurityDeposit: q.SecurityDeposit,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	result := &QuoteResponse{
		PropertyID:           resp.PropertyID,
		CheckIn:              resp.CheckIn.Format(domain.DateFormat),
		CheckOut:             resp.CheckOut.Format(domain.DateFormat),
		NumberOfDays:         resp.Quote.NumberOfDays,
		TotalPrice:           resp.Quote.TotalPrice,
		Priceable:            resp.Quote.Priceable(),
		Breakdown:            FromQuote(resp.Quote),
		Bookable:             resp.Bookable,
		AvailabilityDegraded: resp.AvailabilityDegraded,
	}

	if resp.FirstUnavailableNight != nil {
		night := resp.FirstUnavailableNight.Format(domain.DateFormat)
		result.FirstUnavailableNight = &night
	}

	return result
}
