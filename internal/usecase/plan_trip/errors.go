package plan_trip

import "errors"

var (
	// ErrInvalidInput возвращается, если не заполнены обязательные поля; внешних вызовов при этом не было
	ErrInvalidInput = errors.New("plan_trip: invalid input data")

	// ErrMessagingNotConfigured возвращается, если не задан номер WhatsApp
	ErrMessagingNotConfigured = errors.New("plan_trip: messaging number is not configured")

	// ErrSendFailed возвращается, если функция отправки письма вернула ошибку
	ErrSendFailed = errors.New("plan_trip: failed to send trip request")
)
