package get_availability

import (
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	getAvailability "github.com/aplet360/pricing-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID string        `json:"propertyId"`
	From       string        `json:"from"` // "2024-06-01"
	To         string        `json:"to"`
	Degraded   bool          `json:"degraded"`
	Days       []DayResponse `json:"days"`
}

// DayResponse вердикт по одной дате
type DayResponse struct {
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(propertyID, from, to string) (*getAvailability.Request, error) {
	fromDate, err := time.Parse(domain.DateFormat, from)
	if err != nil {
		return nil, err
	}

	toDate, err := time.Parse(domain.DateFormat, to)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		PropertyID: propertyID,
		From:       fromDate,
		To:         toDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Bookable: d.Bookable,
		}
	}

	return &AvailabilityResponse{
		PropertyID: resp.PropertyID,
		From:       resp.From.Format(domain.DateFormat),
		To:         resp.To.Format(domain.DateFormat),
		Degraded:   resp.Degraded,
		Days:       days,
	}
}
