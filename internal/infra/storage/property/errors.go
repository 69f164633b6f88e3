package property

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("property.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("property.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("property.repository: failed to scan row")

	// ErrUnknownPeriod в таблице тарифов встретился неизвестный период
	ErrUnknownPeriod = errors.New("property.repository: unknown pricing period")
)
