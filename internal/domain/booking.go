package domain

import (
	"time"

	"github.com/aplet360/pricing-service/pkg/money"
	"github.com/aplet360/pricing-service/pkg/types"
)

// PaymentProvider платёжный провайдер, подтвердивший оплату
type PaymentProvider string

const (
	ProviderPaystack    PaymentProvider = "paystack"
	ProviderFlutterwave PaymentProvider = "flutterwave"
)

// Payment непрозрачная ссылка на успешный платёж из callback провайдера
type Payment struct {
	Provider  PaymentProvider
	Reference string
}

// BookingRequest заявка на бронирование, которая уходит во внешний booking API.
// Создаётся один раз на попытку и после отправки не меняется.
type BookingRequest struct {
	PropertyID       string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	EstimatedArrival types.TimeString
	GuestCount       int
	TotalPrice       money.Amount
	Payment          Payment
	IdempotencyKey   string
}

// Nights количество ночей между заездом и выездом
func (r BookingRequest) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// BookingConfirmation ответ booking API на созданную заявку
type BookingConfirmation struct {
	ID     string
	Status string
}

// IsKnown возвращает true для поддерживаемых провайдеров
func (p PaymentProvider) IsKnown() bool {
	return p == ProviderPaystack || p == ProviderFlutterwave
}
