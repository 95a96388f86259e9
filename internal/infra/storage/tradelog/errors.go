package tradelog

import "errors"

var (
	// ErrTradeLogNotFound возвращается, когда запись не найдена
	ErrTradeLogNotFound = errors.New("tradelog.repository: trade log not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tradelog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tradelog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tradelog.repository: failed to scan row")
)
