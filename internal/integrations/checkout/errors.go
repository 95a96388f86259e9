package checkout

import "errors"

var (
	// ErrSessionRejected возвращается, когда провайдер отклонил параметры сессии
	ErrSessionRejected = errors.New("checkout client: session rejected by provider")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("checkout client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("checkout client: invalid response")
)
