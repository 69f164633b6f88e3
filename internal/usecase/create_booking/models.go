package create_booking

import (
	"time"

	"github.com/aplet360/pricing-service/internal/engine"
	"github.com/aplet360/pricing-service/pkg/money"
	"github.com/aplet360/pricing-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PropertyID       string           `validate:"required,max=64"`
	CheckInDate      time.Time        `validate:"required"`
	CheckOutDate     time.Time        `validate:"required"`
	EstimatedArrival types.TimeString // Ожидаемое время заезда (например, "14:00")
	GuestCount       int              `validate:"gte=1,lte=50"`
	ExpectedTotal    *money.Amount    // Сумма, показанная пользователю (опционально)
	Payment          Payment
	Authorization    string // Заголовок Authorization пользователя, передается в booking API как есть
}

// Payment ссылка на успешный платеж из callback провайдера
type Payment struct {
	Provider  string `validate:"required,payment_provider"`
	Reference string `validate:"required,max=128"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID            string
	Status               string
	PropertyID           string
	CheckInDate          time.Time
	CheckOutDate         time.Time
	EstimatedArrival     types.TimeString
	GuestCount           int
	TotalPrice           money.Amount
	Quote                engine.Quote
	IdempotencyKey       string
	AvailabilityDegraded bool
}
