package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/psqlbuilder"
)

// Repository read-only репозиторий объектов и их тарифов (реплика БД бэкенда)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProperty получает опубликованный объект вместе с тарифами.
// Тарифы day/week/month хранятся строками в property_pricing_tiers,
// годовой тариф в property_rent_per_year (может отсутствовать).
func (r *Repository) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	query, args, err := buildGetPropertyQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProperty - build select query: %v", ErrBuildQuery, err)
	}

	var (
		property   domain.Property
		category   string
		year       domain.YearTier
		yearActive sql.NullBool
		agencyOn   sql.NullBool
		commission sql.NullBool
		cautionOn  sql.NullBool
		legalOn    sql.NullBool
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&property.ID,
		&property.Title,
		&category,
		&yearActive,
		&year.AnnualRent,
		&year.AgencyFee,
		&agencyOn,
		&year.CommissionFee,
		&commission,
		&year.CautionFee,
		&cautionOn,
		&year.LegalFee,
		&legalOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: property_id=%s", domain.ErrPropertyNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProperty - scan property: %v", ErrScanRow, err)
	}

	property.Category = domain.PropertyCategory(strings.ToLower(category))
	year.IsActive = yearActive.Bool
	year.IsAgencyFeeActive = agencyOn.Bool
	year.IsCommissionFeeActive = commission.Bool
	year.IsCautionFeeActive = cautionOn.Bool
	year.IsLegalFeeActive = legalOn.Bool
	property.Pricing.RentPerYear = year

	if err := r.loadTiers(ctx, &property); err != nil {
		return nil, err
	}
	// CHECK-ограничений на реплике нет
	property.Pricing.DisableNegativeTiers()

	return &property, nil
}

func (r *Repository) loadTiers(ctx context.Context, property *domain.Property) error {
	query, args, err := buildGetTiersQuery(property.ID)
	if err != nil {
		return fmt.Errorf("%w: loadTiers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadTiers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			period string
			tier   domain.PricingTier
		)
		if err := rows.Scan(
			&period,
			&tier.IsActive,
			&tier.BasePrice,
			&tier.CleaningFee,
			&tier.SecurityDeposit,
		); err != nil {
			return fmt.Errorf("%w: loadTiers - scan tier: %v", ErrScanRow, err)
		}

		if err := setTier(&property.Pricing, domain.Period(period), tier); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadTiers - iterate rows: %v", ErrExecQuery, err)
	}
	return nil
}

func setTier(pricing *domain.PropertyPricing, period domain.Period, tier domain.PricingTier) error {
	switch period {
	case domain.PeriodDay:
		pricing.PerDay = tier
	case domain.PeriodWeek:
		pricing.PerWeek = tier
	case domain.PeriodMonth:
		pricing.PerMonth = tier
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
	return nil
}

func buildGetPropertyQuery(id string) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"p.id",
		"p.title",
		"p.property_category",
		"y.is_active",
		"y.annual_rent",
		"y.agency_fee",
		"y.is_agency_fee_active",
		"y.commission_fee",
		"y.is_commission_fee_active",
		"y.caution_fee",
		"y.is_caution_fee_active",
		"y.legal_fee",
		"y.is_legal_fee_active",
	).
		From("properties p").
		LeftJoin("property_rent_per_year y ON y.property_id = p.id").
		Where(squirrel.Eq{"p.id": id}).
		Where(squirrel.Eq{"p.is_published": true}).
		ToSql()
}

func buildGetTiersQuery(propertyID string) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"period",
		"is_active",
		"base_price",
		"cleaning_fee",
		"security_deposit",
	).
		From("property_pricing_tiers").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Eq{"period": []string{
			string(domain.PeriodDay),
			string(domain.PeriodWeek),
			string(domain.PeriodMonth),
		}}).
		ToSql()
}
