package get_quote

import (
	"time"

	"github.com/aplet360/pricing-service/internal/engine"
)

// Request модель запроса расчета цены
type Request struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
}

// Response модель ответа с ценой и вердиктом доступности.
// Для пустого или перевернутого диапазона Quote нулевой, Bookable false; это не ошибка.
type Response struct {
	PropertyID            string
	CheckIn               time.Time
	CheckOut              time.Time
	Quote                 engine.Quote
	Bookable              bool
	FirstUnavailableNight *time.Time
	AvailabilityDegraded  bool
}
