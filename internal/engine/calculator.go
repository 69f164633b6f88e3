package engine

import (
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/money"
)

// Quote результат расчета стоимости проживания с разбивкой
type Quote struct {
	TotalPrice   money.Amount
	NumberOfDays int

	// Tier примененный тариф; пустой, если ни один тариф не подошел
	Tier          domain.Period
	Units         int
	UnitPrice     money.Amount
	RemainderDays int
	RemainderRate money.Amount

	CleaningFee     money.Amount
	SecurityDeposit money.Amount
}

// Priceable возвращает false, если цену вычислить не удалось.
// Нулевой TotalPrice без тарифа означает «нет цены», а не «бесплатно».
func (q Quote) Priceable() bool {
	return q.Tier != ""
}

// CalculateTotalPrice считает стоимость проживания с start по end.
//
// Тариф выбирается жадно по фиксированному приоритету месяц > неделя > день
// без сравнения стоимости вариантов: 35 дней при активных месячном и недельном
// тарифах всегда считаются помесячно. Остаток дней оплачивается по суточному
// тарифу, если он активен, иначе не оплачивается.
//
// Уборка и депозит выбранного тарифа добавляются один раз за всё проживание,
// а не за каждый месяц или неделю. Так считает текущий фронтенд, и итоговые
// суммы должны совпадать с ним; при смене правила менять и клиент.
func CalculateTotalPrice(start, end time.Time, pricing *domain.PropertyPricing) Quote {
	days := daysBetween(start, end)
	if days == 0 {
		return Quote{}
	}

	quote := Quote{NumberOfDays: days}
	if pricing == nil {
		return quote
	}

	var dayRate money.Amount
	if pricing.PerDay.IsActive {
		dayRate = pricing.PerDay.BasePrice
	}

	switch {
	case days >= domain.DaysPerMonth && pricing.PerMonth.IsActive:
		quote.applyTier(domain.PeriodMonth, pricing.PerMonth, days, domain.DaysPerMonth, dayRate)
	case days >= domain.DaysPerWeek && pricing.PerWeek.IsActive:
		quote.applyTier(domain.PeriodWeek, pricing.PerWeek, days, domain.DaysPerWeek, dayRate)
	case pricing.PerDay.IsActive:
		quote.applyTier(domain.PeriodDay, pricing.PerDay, days, 1, dayRate)
	}

	return quote
}

func (q *Quote) applyTier(period domain.Period, tier domain.PricingTier, days, unitDays int, dayRate money.Amount) {
	q.Tier = period
	q.Units = days / unitDays
	q.UnitPrice = tier.BasePrice
	q.RemainderDays = days % unitDays
	if q.RemainderDays > 0 {
		q.RemainderRate = dayRate
	}
	q.CleaningFee = tier.CleaningFee
	q.SecurityDeposit = tier.SecurityDeposit

	q.TotalPrice = tier.BasePrice.Multiply(q.Units).
		Add(q.RemainderRate.Multiply(q.RemainderDays)).
		Add(tier.CleaningFee).
		Add(tier.SecurityDeposit)
}
