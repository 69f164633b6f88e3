package domain

import "errors"

var (
	// ErrPropertyNotFound объект не найден ни в одном источнике данных
	ErrPropertyNotFound = errors.New("property not found")
)
