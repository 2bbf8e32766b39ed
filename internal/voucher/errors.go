package voucher

import "errors"

var (
	// ErrNotAvailable возвращается, если ваучер для бронирования не выдаётся
	ErrNotAvailable = errors.New("voucher: available only for confirmed or completed bookings")

	// ErrRender возвращается при ошибке формирования PDF
	ErrRender = errors.New("voucher: failed to render document")
)
