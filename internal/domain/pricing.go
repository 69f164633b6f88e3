package domain

import "github.com/aplet360/pricing-service/pkg/money"

// Period тарифный период
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// PricingTier тариф посуточной, понедельной или помесячной аренды
type PricingTier struct {
	IsActive        bool
	BasePrice       money.Amount
	CleaningFee     money.Amount
	SecurityDeposit money.Amount
}

// Total базовая цена вместе с уборкой и депозитом
func (t PricingTier) Total() money.Amount {
	return t.BasePrice.Add(t.CleaningFee).Add(t.SecurityDeposit)
}

// HasNegativeAmount возвращает true, если цена или сбор меньше нуля
func (t PricingTier) HasNegativeAmount() bool {
	return t.BasePrice.IsNegative() || t.CleaningFee.IsNegative() || t.SecurityDeposit.IsNegative()
}

// YearTier годовой тариф долгосрочной аренды.
// Каждый сбор учитывается только при включенном собственном флаге.
type YearTier struct {
	IsActive              bool
	AnnualRent            money.Amount
	AgencyFee             money.Amount
	IsAgencyFeeActive     bool
	CommissionFee         money.Amount
	IsCommissionFeeActive bool
	CautionFee            money.Amount
	IsCautionFeeActive    bool
	LegalFee              money.Amount
	IsLegalFeeActive      bool
}

// HasNegativeAmount возвращает true, если аренда или включенный сбор меньше нуля
func (t YearTier) HasNegativeAmount() bool {
	fees := t.ActiveFees()
	return t.AnnualRent.IsNegative() || fees.AgencyFee.IsNegative() || fees.CommissionFee.IsNegative() ||
		fees.CautionFee.IsNegative() || fees.LegalFee.IsNegative()
}

// YearFees сборы годового тарифа после применения флагов
type YearFees struct {
	AgencyFee     money.Amount
	CommissionFee money.Amount
	CautionFee    money.Amount
	LegalFee      money.Amount
}

// Total сумма всех сборов
func (f YearFees) Total() money.Amount {
	return f.AgencyFee.Add(f.CommissionFee).Add(f.CautionFee).Add(f.LegalFee)
}

// ActiveFees возвращает сборы, обнуляя выключенные
func (t YearTier) ActiveFees() YearFees {
	var fees YearFees
	if t.IsAgencyFeeActive {
		fees.AgencyFee = t.AgencyFee
	}
	if t.IsCommissionFeeActive {
		fees.CommissionFee = t.CommissionFee
	}
	if t.IsCautionFeeActive {
		fees.CautionFee = t.CautionFee
	}
	if t.IsLegalFeeActive {
		fees.LegalFee = t.LegalFee
	}
	return fees
}

// PropertyPricing полный набор тарифов объекта.
// Ни один тариф не обязателен; без активных тарифов цена не вычисляется.
type PropertyPricing struct {
	PerDay      PricingTier
	PerWeek     PricingTier
	PerMonth    PricingTier
	RentPerYear YearTier
}

// HasActiveTier возвращает true, если активен хотя бы один тариф
func (p PropertyPricing) HasActiveTier() bool {
	return p.PerDay.IsActive || p.PerWeek.IsActive || p.PerMonth.IsActive || p.RentPerYear.IsActive
}

// DisableNegativeTiers выключает активные тарифы с отрицательными суммами
// и возвращает их периоды. Цена и сборы не бывают меньше нуля.
func (p *PropertyPricing) DisableNegativeTiers() []Period {
	var disabled []Period
	for _, entry := range []struct {
		period Period
		tier   *PricingTier
	}{
		{PeriodDay, &p.PerDay},
		{PeriodWeek, &p.PerWeek},
		{PeriodMonth, &p.PerMonth},
	} {
		if entry.tier.IsActive && entry.tier.HasNegativeAmount() {
			entry.tier.IsActive = false
			disabled = append(disabled, entry.period)
		}
	}
	if p.RentPerYear.IsActive && p.RentPerYear.HasNegativeAmount() {
		p.RentPerYear.IsActive = false
		disabled = append(disabled, PeriodYear)
	}
	return disabled
}

// Tier возвращает тариф по периоду (для day, week, month)
func (p PropertyPricing) Tier(period Period) (PricingTier, bool) {
	switch period {
	case PeriodDay:
		return p.PerDay, true
	case PeriodWeek:
		return p.PerWeek, true
	case PeriodMonth:
		return p.PerMonth, true
	default:
		return PricingTier{}, false
	}
}
