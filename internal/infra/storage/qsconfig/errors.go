package qsconfig

import "errors"

var (
	// ErrConfigDayNotFound возвращается, когда конфигурация дня не найдена
	ErrConfigDayNotFound = errors.New("qsconfig.repository: config day not found")

	// ErrConfigHourNotFound возвращается, когда часовой интервал дня не найден
	ErrConfigHourNotFound = errors.New("qsconfig.repository: config hour not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("qsconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("qsconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("qsconfig.repository: failed to scan row")
)
