package engine

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// NormalizeDate приводит момент времени к календарной дате в его собственной зоне,
// выраженной как полночь UTC. Все сравнения дат в движке идут только через неё.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween количество суток между моментами с округлением вверх; для end <= start возвращает 0
func daysBetween(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

// inWindow проверяет попадание даты в окно с включенными границами
func inWindow(date, start, end time.Time) bool {
	start = NormalizeDate(start)
	end = NormalizeDate(end)
	return !date.Before(start) && !date.After(end)
}
