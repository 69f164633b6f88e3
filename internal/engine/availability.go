package engine

import (
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
)

// DayAvailability вердикт по одной календарной дате
type DayAvailability struct {
	Date     time.Time
	Bookable bool
}

// Evaluator проверяет доступность дат.
// FailOpen определяет ответ при отсутствии данных доступности: true считает все даты свободными.
type Evaluator struct {
	FailOpen bool
}

// DefaultEvaluator работает в режиме fail-open
var DefaultEvaluator = Evaluator{FailOpen: true}

// IsDateBookable проверяет дату с политикой по умолчанию (fail-open)
func IsDateBookable(date time.Time, availability *domain.AvailabilityData) bool {
	return DefaultEvaluator.IsDateBookable(date, availability)
}

// IsDateBookable возвращает true, если дата входит в доступные окна и не входит ни в одно недоступное.
// Пустой список доступных окон означает, что доступны все даты.
func (e Evaluator) IsDateBookable(date time.Time, availability *domain.AvailabilityData) bool {
	if availability == nil {
		return e.FailOpen
	}

	date = NormalizeDate(date)

	inAvailable := len(availability.AvailableDates) == 0
	for _, w := range availability.AvailableDates {
		if inWindow(date, w.StartDate, w.EndDate) {
			inAvailable = true
			break
		}
	}
	if !inAvailable {
		return false
	}

	for _, w := range availability.UnavailableDates {
		if inWindow(date, w.StartDate, w.EndDate) {
			return false
		}
	}
	return true
}

// IsRangeBookable проверяет каждую ночь проживания [checkIn, checkOut).
// День выезда не занимается и не проверяется. Пустой диапазон не бронируется.
func (e Evaluator) IsRangeBookable(checkIn, checkOut time.Time, availability *domain.AvailabilityData) bool {
	from := NormalizeDate(checkIn)
	to := NormalizeDate(checkOut)
	if !from.Before(to) {
		return false
	}
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if !e.IsDateBookable(d, availability) {
			return false
		}
	}
	return true
}

// FirstUnavailableNight возвращает первую занятую ночь диапазона, если она есть
func (e Evaluator) FirstUnavailableNight(checkIn, checkOut time.Time, availability *domain.AvailabilityData) (time.Time, bool) {
	to := NormalizeDate(checkOut)
	for d := NormalizeDate(checkIn); d.Before(to); d = d.AddDate(0, 0, 1) {
		if !e.IsDateBookable(d, availability) {
			return d, true
		}
	}
	return time.Time{}, false
}

// Calendar возвращает вердикты по каждой дате [from, to] включительно, не более MaxCalendarDays дней.
// При from > to результат пустой.
func (e Evaluator) Calendar(from, to time.Time, availability *domain.AvailabilityData) []DayAvailability {
	start := NormalizeDate(from)
	end := NormalizeDate(to)
	if start.After(end) {
		return nil
	}

	days := make([]DayAvailability, 0, domain.MaxCalendarDays)
	for d := start; !d.After(end) && len(days) < domain.MaxCalendarDays; d = d.AddDate(0, 0, 1) {
		days = append(days, DayAvailability{
			Date:     d,
			Bookable: e.IsDateBookable(d, availability),
		})
	}
	return days
}
