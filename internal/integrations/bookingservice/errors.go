package bookingservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrConflict даты уже заняты другим бронированием (решение бэкенда окончательное)
	ErrConflict = errors.New("bookingservice: dates no longer available")

	// ErrRejected бэкенд отклонил заявку как некорректную
	ErrRejected = errors.New("bookingservice: booking rejected")

	// ErrUnauthorized бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("bookingservice: unauthorized")
)
