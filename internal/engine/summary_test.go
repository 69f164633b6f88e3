package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/money"
)

func TestGetActivePricing_RentYearFees(t *testing.T) {
	property := domain.Property{
		Category: domain.CategoryRent,
		Pricing: domain.PropertyPricing{
			RentPerYear: domain.YearTier{
				IsActive:          true,
				AnnualRent:        money.Naira(1200000),
				IsAgencyFeeActive: true,
				AgencyFee:         money.Naira(50000),
				IsLegalFeeActive:  false,
				LegalFee:          money.Naira(20000),
				CautionFee:        money.Naira(30000),
			},
		},
	}

	s := GetActivePricing(property)

	require.NotNil(t, s)
	assert.Equal(t, SummaryRent, s.Type)
	assert.Equal(t, money.Naira(1200000), s.Price)
	assert.Equal(t, domain.PeriodYear, s.Period)
	require.NotNil(t, s.Fees)
	assert.Equal(t, domain.YearFees{AgencyFee: money.Naira(50000)}, *s.Fees)
}

func TestGetActivePricing_ShortletOptions(t *testing.T) {
	property := domain.Property{
		Category: domain.CategoryShortlet,
		Pricing: domain.PropertyPricing{
			PerDay:  tier(10000, 2000, 5000),
			PerWeek: tier(60000, 2000, 5000),
		},
	}

	s := GetActivePricing(property)

	require.NotNil(t, s)
	assert.Equal(t, SummaryShortlet, s.Type)
	require.Len(t, s.Options, 2)
	assert.NotContains(t, s.Options, domain.PeriodMonth)
	assert.Equal(t, PricingOption{
		BasePrice:       money.Naira(10000),
		CleaningFee:     money.Naira(2000),
		SecurityDeposit: money.Naira(5000),
		Total:           money.Naira(17000),
	}, s.Options[domain.PeriodDay])
	assert.Equal(t, money.Naira(67000), s.Options[domain.PeriodWeek].Total)
}

func TestGetActivePricing_Office(t *testing.T) {
	t.Run("month preferred", func(t *testing.T) {
		s := GetActivePricing(domain.Property{
			Category: domain.CategoryOffice,
			Pricing: domain.PropertyPricing{
				PerMonth:    tier(300000, 10000, 50000),
				RentPerYear: domain.YearTier{IsActive: true, AnnualRent: money.Naira(3000000)},
			},
		})

		require.NotNil(t, s)
		assert.Equal(t, SummaryOffice, s.Type)
		assert.Equal(t, domain.PeriodMonth, s.Period)
		assert.Equal(t, money.Naira(300000), s.Price)
		assert.Equal(t, money.Naira(360000), s.Total)
		assert.Nil(t, s.Fees)
	})

	t.Run("year fallback", func(t *testing.T) {
		s := GetActivePricing(domain.Property{
			Category: domain.CategoryOffice,
			Pricing: domain.PropertyPricing{
				RentPerYear: domain.YearTier{
					IsActive:              true,
					AnnualRent:            money.Naira(3000000),
					CommissionFee:         money.Naira(100000),
					IsCommissionFeeActive: true,
				},
			},
		})

		require.NotNil(t, s)
		assert.Equal(t, SummaryOffice, s.Type)
		assert.Equal(t, domain.PeriodYear, s.Period)
		require.NotNil(t, s.Fees)
		assert.Equal(t, money.Naira(100000), s.Fees.CommissionFee)
	})

	t.Run("basic fallback", func(t *testing.T) {
		s := GetActivePricing(domain.Property{
			Category: domain.CategoryOffice,
			Pricing: domain.PropertyPricing{
				PerDay:  tier(15000, 0, 0),
				PerWeek: tier(90000, 0, 0),
			},
		})

		require.NotNil(t, s)
		assert.Equal(t, SummaryBasic, s.Type)
		assert.Equal(t, domain.PeriodWeek, s.Period)
		assert.Equal(t, money.Naira(90000), s.Price)
	})
}

func TestGetActivePricing_RentWithoutYearTier(t *testing.T) {
	s := GetActivePricing(domain.Property{
		Category: domain.CategoryRent,
		Pricing:  domain.PropertyPricing{PerMonth: tier(250000, 0, 0)},
	})

	require.NotNil(t, s)
	assert.Equal(t, SummaryShortlet, s.Type)
	assert.Contains(t, s.Options, domain.PeriodMonth)
}

func TestGetActivePricing_YearOnlyShortlet(t *testing.T) {
	s := GetActivePricing(domain.Property{
		Category: domain.CategoryShortlet,
		Pricing: domain.PropertyPricing{
			RentPerYear: domain.YearTier{IsActive: true, AnnualRent: money.Naira(900000)},
		},
	})

	assert.Nil(t, s)
}

func TestGetActivePricing_NoActiveTier(t *testing.T) {
	inactive := tier(10000, 2000, 5000)
	inactive.IsActive = false
	pricing := domain.PropertyPricing{
		PerDay:      inactive,
		PerWeek:     inactive,
		PerMonth:    inactive,
		RentPerYear: domain.YearTier{AnnualRent: money.Naira(1000000), AgencyFee: money.Naira(1000), IsAgencyFeeActive: true},
	}

	for _, category := range []domain.PropertyCategory{
		domain.CategoryRent, domain.CategoryShortlet, domain.CategoryOffice, "warehouse",
	} {
		assert.Nil(t, GetActivePricing(domain.Property{Category: category, Pricing: pricing}), string(category))
	}
}

func TestGetActivePricing_UnknownCategoryUsesShortletOptions(t *testing.T) {
	s := GetActivePricing(domain.Property{
		Category: "warehouse",
		Pricing: domain.PropertyPricing{
			PerDay:      tier(10000, 2000, 5000),
			PerMonth:    tier(250000, 0, 0),
			RentPerYear: domain.YearTier{IsActive: true, AnnualRent: money.Naira(900000)},
		},
	})

	require.NotNil(t, s)
	assert.Equal(t, SummaryShortlet, s.Type)
	require.Len(t, s.Options, 2)
	assert.Equal(t, money.Naira(17000), s.Options[domain.PeriodDay].Total)
	assert.Equal(t, money.Naira(250000), s.Options[domain.PeriodMonth].BasePrice)
	assert.Nil(t, s.Fees)

	price, period, ok := s.DisplayPrice()
	require.True(t, ok)
	assert.Equal(t, money.Naira(10000), price)
	assert.Equal(t, domain.PeriodDay, period)
}

func TestPricingSummary_DisplayPrice(t *testing.T) {
	tests := []struct {
		name     string
		property domain.Property
		price    int64
		period   domain.Period
		ok       bool
	}{
		{
			name: "rent uses annual rent",
			property: domain.Property{Category: domain.CategoryRent, Pricing: domain.PropertyPricing{
				RentPerYear: domain.YearTier{IsActive: true, AnnualRent: money.Naira(1200000), AgencyFee: money.Naira(1), IsAgencyFeeActive: true},
			}},
			price: 1200000, period: domain.PeriodYear, ok: true,
		},
		{
			name: "office month uses total",
			property: domain.Property{Category: domain.CategoryOffice, Pricing: domain.PropertyPricing{
				PerMonth: tier(300000, 10000, 50000),
			}},
			price: 360000, period: domain.PeriodMonth, ok: true,
		},
		{
			name: "shortlet uses first option by day week month",
			property: domain.Property{Category: domain.CategoryShortlet, Pricing: domain.PropertyPricing{
				PerWeek:  tier(60000, 1000, 0),
				PerMonth: tier(200000, 0, 0),
			}},
			price: 60000, period: domain.PeriodWeek, ok: true,
		},
		{
			name:     "no pricing",
			property: domain.Property{Category: domain.CategoryShortlet},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, period, ok := GetActivePricing(tt.property).DisplayPrice()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, money.Naira(tt.price), price)
			assert.Equal(t, tt.period, period)
		})
	}
}
