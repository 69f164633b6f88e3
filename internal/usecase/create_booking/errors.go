package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда (ноль ночей)
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrCheckInInPast возвращается, когда дата заезда уже прошла
	ErrCheckInInPast = errors.New("create_booking: check-in date is in the past")

	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrPricingUnavailable возвращается, когда для выбранного срока нет активного тарифа
	ErrPricingUnavailable = errors.New("create_booking: no pricing available for the selected dates")

	// ErrPriceChanged возвращается, когда цена, показанная клиенту, не совпадает с рассчитанной
	ErrPriceChanged = errors.New("create_booking: price has changed")

	// ErrDatesUnavailable возвращается, когда хотя бы одна ночь занята
	ErrDatesUnavailable = errors.New("create_booking: dates no longer available")

	// ErrBookingRejected возвращается, когда booking API отклонил заявку
	ErrBookingRejected = errors.New("create_booking: booking rejected")

	// ErrUnauthorized возвращается, когда booking API не принял токен пользователя
	ErrUnauthorized = errors.New("create_booking: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
