package domain

// Длины тарифных периодов в днях, используемые при разложении срока проживания
const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
)

// Ограничения запросов
const (
	MaxCalendarDays = 366 // календарь доступности не длиннее года
	MaxListingBatch = 50  // количество объявлений в одном запросе сводки цен
)

// DateFormat формат дат в запросах и ответах (YYYY-MM-DD)
const DateFormat = "2006-01-02"
