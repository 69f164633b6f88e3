package propertyservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/money"
)

// envelope ответ бэкенда может быть обернут в {"data": ...}
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrap возвращает содержимое data, если ответ обернут, иначе тело целиком
func unwrap(body []byte) []byte {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return env.Data
	}
	return body
}

// Property модель объекта из PropertyService
type Property struct {
	ID       string  `json:"id"`
	MongoID  string  `json:"_id"`
	Title    string  `json:"title"`
	Category string  `json:"property_category"`
	Pricing  Pricing `json:"pricing"`
}

type Pricing struct {
	PerDay      PricingTier `json:"per_day"`
	PerWeek     PricingTier `json:"per_week"`
	PerMonth    PricingTier `json:"per_month"`
	RentPerYear YearTier    `json:"rent_per_year"`
}

type PricingTier struct {
	IsActive        bool         `json:"is_active"`
	BasePrice       money.Amount `json:"base_price"`
	CleaningFee     money.Amount `json:"cleaning_fee"`
	SecurityDeposit money.Amount `json:"security_deposit"`
}

type YearTier struct {
	IsActive              bool         `json:"is_active"`
	AnnualRent            money.Amount `json:"annual_rent"`
	AgencyFee             money.Amount `json:"agency_fee"`
	IsAgencyFeeActive     bool         `json:"is_agency_fee_active"`
	CommissionFee         money.Amount `json:"commission_fee"`
	IsCommissionFeeActive bool         `json:"is_commission_fee_active"`
	CautionFee            money.Amount `json:"caution_fee"`
	IsCautionFeeActive    bool         `json:"is_caution_fee_active"`
	LegalFee              money.Amount `json:"legal_fee"`
	IsLegalFeeActive      bool         `json:"is_legal_fee_active"`
}

// Availability модель доступности из PropertyService
type Availability struct {
	AvailableDates   []Window `json:"available_dates"`
	UnavailableDates []Window `json:"unavailable_dates"`
}

type Window struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

// Date дата в формате YYYY-MM-DD или RFC 3339
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(domain.DateFormat, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q", raw)
	}
	d.Time = t
	return nil
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует объект в доменную модель
func (p Property) ToDomain() *domain.Property {
	id := p.ID
	if id == "" {
		id = p.MongoID
	}
	return &domain.Property{
		ID:       id,
		Title:    p.Title,
		Category: domain.PropertyCategory(strings.ToLower(p.Category)),
		Pricing: domain.PropertyPricing{
			PerDay:      p.Pricing.PerDay.toDomain(),
			PerWeek:     p.Pricing.PerWeek.toDomain(),
			PerMonth:    p.Pricing.PerMonth.toDomain(),
			RentPerYear: p.Pricing.RentPerYear.toDomain(),
		},
	}
}

func (t PricingTier) toDomain() domain.PricingTier {
	return domain.PricingTier{
		IsActive:        t.IsActive,
		BasePrice:       t.BasePrice,
		CleaningFee:     t.CleaningFee,
		SecurityDeposit: t.SecurityDeposit,
	}
}

func (t YearTier) toDomain() domain.YearTier {
	return domain.YearTier{
		IsActive:              t.IsActive,
		AnnualRent:            t.AnnualRent,
		AgencyFee:             t.AgencyFee,
		IsAgencyFeeActive:     t.IsAgencyFeeActive,
		CommissionFee:         t.CommissionFee,
		IsCommissionFeeActive: t.IsCommissionFeeActive,
		CautionFee:            t.CautionFee,
		IsCautionFeeActive:    t.IsCautionFeeActive,
		LegalFee:              t.LegalFee,
		IsLegalFeeActive:      t.IsLegalFeeActive,
	}
}

// ToDomain конвертирует доступность в доменную модель
func (a Availability) ToDomain() *domain.AvailabilityData {
	return &domain.AvailabilityData{
		AvailableDates:   windowsToDomain(a.AvailableDates),
		UnavailableDates: windowsToDomain(a.UnavailableDates),
	}
}

func windowsToDomain(windows []Window) []domain.AvailabilityWindow {
	result := make([]domain.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		result = append(result, domain.AvailabilityWindow{
			StartDate: w.StartDate.Time,
			EndDate:   w.EndDate.Time,
		})
	}
	return result
}
