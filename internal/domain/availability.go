package domain

import "time"

// AvailabilityWindow диапазон дат с включенными границами
type AvailabilityWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

// AvailabilityData доступность объекта.
// Пустой AvailableDates означает «доступно всё», UnavailableDates всегда имеет приоритет.
type AvailabilityData struct {
	AvailableDates   []AvailabilityWindow
	UnavailableDates []AvailabilityWindow
}
