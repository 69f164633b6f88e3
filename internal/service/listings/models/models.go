package models

import (
	"errors"
	"strings"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
	"github.com/aplet360/pricing-service/pkg/money"
)

var (
	// ErrInvalidOrder возвращается при неизвестном порядке сортировки
	ErrInvalidOrder = errors.New("invalid sort order")
)

// Order порядок сортировки сетки объявлений по цене
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ToOrder конвертирует строку в Order; пустая строка означает asc
func ToOrder(raw string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return "", ErrInvalidOrder
	}
}

// Request модели

// ListPricingRequest запрос цен для сетки объявлений
type ListPricingRequest struct {
	PropertyIDs []string `json:"propertyIds"`
	Order       Order    `json:"order"`
}

// Response модели

// YearFeesResponse сборы годовой аренды; неактивные сборы равны нулю
type YearFeesResponse struct {
	AgencyFee     money.Amount `json:"agencyFee"`
	CommissionFee money.Amount `json:"commissionFee"`
	CautionFee    money.Amount `json:"cautionFee"`
	LegalFee      money.Amount `json:"legalFee"`
	Total         money.Amount `json:"total"`
}

// PricingOptionResponse вариант цены shortlet
type PricingOptionResponse struct {
	BasePrice       money.Amount `json:"basePrice"`
	CleaningFee     money.Amount `json:"cleaningFee"`
	SecurityDeposit money.Amount `json:"securityDeposit"`
	Total           money.Amount `json:"total"`
}

// PricingSummaryResponse сводка цены карточки
type PricingSummaryResponse struct {
	Type   string        `json:"type"`
	Price  *money.Amount `json:"price,omitempty"`
	Period string        `json:"period,omitempty"`

	Fees *YearFeesResponse `json:"fees,omitempty"`

	CleaningFee     *money.Amount `json:"cleaningFee,omitempty"`
	SecurityDeposit *money.Amount `json:"securityDeposit,omitempty"`
	Total           *money.Amount `json:"total,omitempty"`

	Options map[string]PricingOptionResponse `json:"options,omitempty"`
}

// ListingPricingResponse цена одного объявления.
// Pricing равен nil, если у объекта нет активных тарифов.
type ListingPricingResponse struct {
	PropertyID    string                  `json:"propertyId"`
	Title         string                  `json:"title,omitempty"`
	Category      string                  `json:"category"`
	Pricing       *PricingSummaryResponse `json:"pricing"`
	DisplayPrice  *money.Amount           `json:"displayPrice"`
	DisplayPeriod string                  `json:"displayPeriod,omitempty"`
}

// ListPricingResponse цены сетки объявлений
type ListPricingResponse struct {
	Listings []ListingPricingResponse `json:"listings"`
	Missing  []string                 `json:"missing"`
}

// Методы конвертации

// FromSummary конвертирует сводку движка в DTO
func FromSummary(property *domain.Property, summary *engine.PricingSummary) *ListingPricingResponse {
	resp := &ListingPricingResponse{
		PropertyID: property.ID,
		Title:      property.Title,
		Category:   string(property.Category),
	}
	if summary == nil {
		return resp
	}

	if price, period, ok := summary.DisplayPrice(); ok {
		resp.DisplayPrice = &price
		resp.DisplayPeriod = string(period)
	}

	pricing := &PricingSummaryResponse{
		Type:   string(summary.Type),
		Period: string(summary.Period),
	}

	switch summary.Type {
	case engine.SummaryShortlet:
		pricing.Options = make(map[string]PricingOptionResponse, len(summary.Options))
		for period, opt := range summary.Options {
			pricing.Options[string(period)] = PricingOptionResponse{
				BasePrice:       opt.BasePrice,
				CleaningFee:     opt.CleaningFee,
				SecurityDeposit: opt.SecurityDeposit,
				Total:           opt.Total,
			}
		}
	default:
		price := summary.Price
		pricing.Price = &price
	}

	if summary.Fees != nil {
		pricing.Fees = &YearFeesResponse{
			AgencyFee:     summary.Fees.AgencyFee,
			CommissionFee: summary.Fees.CommissionFee,
			CautionFee:    summary.Fees.CautionFee,
			LegalFee:      summary.Fees.LegalFee,
			Total:         summary.Fees.Total(),
		}
	}

	// Сборы помесячного офиса
	if summary.Type == engine.SummaryOffice && summary.Period == domain.PeriodMonth {
		cleaning, deposit, total := summary.CleaningFee, summary.SecurityDeposit, summary.Total
		pricing.CleaningFee = &cleaning
		pricing.SecurityDeposit = &deposit
		pricing.Total = &total
	}

	resp.Pricing = pricing
	return resp
}
