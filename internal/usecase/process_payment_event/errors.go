package process_payment_event

import "errors"

var (
	// ErrMalformedPayload возвращается, когда в событии отсутствуют обязательные поля
	ErrMalformedPayload = errors.New("process_payment_event: malformed payload")

	// ErrInvalidTimestamp возвращается, когда created_at события не парсится
	// Запись лога к этому моменту уже закоммичена - см. WARN в Execute
	ErrInvalidTimestamp = errors.New("process_payment_event: invalid timestamp format")

	// ErrNotificationDispatchFailed возвращается при ошибке отправки письма
	ErrNotificationDispatchFailed = errors.New("process_payment_event: notification dispatch failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment_event: internal error")
)
