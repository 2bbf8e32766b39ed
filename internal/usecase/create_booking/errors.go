package create_booking

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция каталога не найдена или не опубликована
	ErrItemNotFound = errors.New("create_booking: catalog item not found")

	// ErrInvalidDate возвращается, если дата поездки в прошлом
	ErrInvalidDate = errors.New("create_booking: travel date must not be in the past")

	// ErrTrackingCodeExhausted возвращается, если не удалось подобрать уникальный трекинг-код
	ErrTrackingCodeExhausted = errors.New("create_booking: failed to allocate unique tracking code")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
