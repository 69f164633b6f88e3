package engine

import (
	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/money"
)

// SummaryType вид сводки цены для карточки объявления
type SummaryType string

const (
	SummaryRent     SummaryType = "rent"
	SummaryOffice   SummaryType = "office"
	SummaryShortlet SummaryType = "shortlet"
	SummaryBasic    SummaryType = "basic"
)

// PricingOption одна из параллельных цен краткосрочной аренды
type PricingOption struct {
	BasePrice       money.Amount
	CleaningFee     money.Amount
	SecurityDeposit money.Amount
	Total           money.Amount
}

// PricingSummary нормализованная цена объявления, не зависящая от выбранных дат.
// Заполнены только поля, относящиеся к Type.
type PricingSummary struct {
	Type   SummaryType
	Price  money.Amount
	Period domain.Period

	// годовая аренда
	Fees *domain.YearFees

	// офис помесячно
	CleaningFee     money.Amount
	SecurityDeposit money.Amount
	Total           money.Amount

	// shortlet
	Options map[domain.Period]PricingOption
}

// optionOrder порядок перебора тарифов shortlet
var optionOrder = []domain.Period{domain.PeriodDay, domain.PeriodWeek, domain.PeriodMonth}

// fallbackOrder порядок перебора тарифов, когда категория ничего не дала
var fallbackOrder = []domain.Period{domain.PeriodMonth, domain.PeriodWeek, domain.PeriodDay}

// GetActivePricing выбирает цену для карточки объявления по приоритету:
// годовая аренда для rent, месяц или год для office, все активные тарифы
// для shortlet, затем первый активный из месяц/неделя/день.
// Возвращает nil, если активных тарифов нет; нулевая сводка не возвращается никогда.
func GetActivePricing(property domain.Property) *PricingSummary {
	pricing := property.Pricing
	if !pricing.HasActiveTier() {
		return nil
	}

	switch property.Category {
	case domain.CategoryRent:
		if pricing.RentPerYear.IsActive {
			return yearSummary(SummaryRent, pricing.RentPerYear)
		}
		if s := shortletSummary(pricing); s != nil {
			return s
		}
	case domain.CategoryOffice:
		if pricing.PerMonth.IsActive {
			tier := pricing.PerMonth
			return &PricingSummary{
				Type:            SummaryOffice,
				Price:           tier.BasePrice,
				Period:          domain.PeriodMonth,
				CleaningFee:     tier.CleaningFee,
				SecurityDeposit: tier.SecurityDeposit,
				Total:           tier.Total(),
			}
		}
		if pricing.RentPerYear.IsActive {
			return yearSummary(SummaryOffice, pricing.RentPerYear)
		}
	default:
		if s := shortletSummary(pricing); s != nil {
			return s
		}
	}

	for _, period := range fallbackOrder {
		tier, _ := pricing.Tier(period)
		if tier.IsActive {
			return &PricingSummary{
				Type:   SummaryBasic,
				Price:  tier.BasePrice,
				Period: period,
			}
		}
	}

	return nil
}

func yearSummary(summaryType SummaryType, tier domain.YearTier) *PricingSummary {
	fees := tier.ActiveFees()
	return &PricingSummary{
		Type:   summaryType,
		Price:  tier.AnnualRent,
		Period: domain.PeriodYear,
		Fees:   &fees,
	}
}

func shortletSummary(pricing domain.PropertyPricing) *PricingSummary {
	options := make(map[domain.Period]PricingOption)
	for _, period := range optionOrder {
		tier, _ := pricing.Tier(period)
		if !tier.IsActive {
			continue
		}
		options[period] = PricingOption{
			BasePrice:       tier.BasePrice,
			CleaningFee:     tier.CleaningFee,
			SecurityDeposit: tier.SecurityDeposit,
			Total:           tier.Total(),
		}
	}
	if len(options) == 0 {
		return nil
	}
	return &PricingSummary{Type: SummaryShortlet, Options: options}
}

// DisplayPrice цена для бейджа и сортировки сетки объявлений.
// Офис помесячно показывается с учетом сборов, shortlet по первому активному
// варианту в порядке день, неделя, месяц. Для nil сводки возвращает false.
func (s *PricingSummary) DisplayPrice() (money.Amount, domain.Period, bool) {
	if s == nil {
		return 0, "", false
	}

	switch s.Type {
	case SummaryShortlet:
		for _, period := range optionOrder {
			if opt, ok := s.Options[period]; ok {
				return opt.BasePrice, period, true
			}
		}
		return 0, "", false
	case SummaryOffice:
		if s.Period == domain.PeriodMonth {
			return s.Total, s.Period, true
		}
		return s.Price, s.Period, true
	default:
		return s.Price, s.Period, true
	}
}
