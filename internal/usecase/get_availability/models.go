package get_availability

import "time"

// Request модель запроса календаря доступности
type Request struct {
	PropertyID string    // ID объекта
	From       time.Time // Первая дата календаря (включительно)
	To         time.Time // Последняя дата календаря (включительно)
}

// Response модель ответа с вердиктами по дням
type Response struct {
	PropertyID string
	From       time.Time
	To         time.Time
	Degraded   bool // данные доступности не получены, даты оценены по политике fail-open/fail-closed
	Days       []Day
}

// Day вердикт по одной дате
type Day struct {
	Date     time.Time
	Bookable bool
}
