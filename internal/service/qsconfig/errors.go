package qsconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация дня не найдена
	ErrConfigNotFound = errors.New("config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
