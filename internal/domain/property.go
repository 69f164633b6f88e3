package domain

// PropertyCategory категория объекта недвижимости
type PropertyCategory string

const (
	CategoryRent     PropertyCategory = "rent"
	CategoryShortlet PropertyCategory = "shortlet"
	CategoryOffice   PropertyCategory = "office"
)

// IsKnown возвращает true для поддерживаемых категорий
func (c PropertyCategory) IsKnown() bool {
	return c == CategoryRent || c == CategoryShortlet || c == CategoryOffice
}

// Property объект недвижимости в том виде, в каком его отдаёт бэкенд (только поля, нужные для цены)
type Property struct {
	ID       string
	Title    string
	Category PropertyCategory
	Pricing  PropertyPricing
}
