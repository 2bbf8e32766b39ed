package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrVoucherNotAvailable возвращается, когда статус бронирования не допускает ваучер
	ErrVoucherNotAvailable = errors.New("voucher is available only for confirmed or completed bookings")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrTransitionNotAllowed возвращается, если переход статуса запрещён
	ErrTransitionNotAllowed = errors.New("booking status transition is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
