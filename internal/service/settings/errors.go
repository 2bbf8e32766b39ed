package settings

import "errors"

var (
	// ErrUnknownGroup возвращается для неподдерживаемой группы настроек
	ErrUnknownGroup = errors.New("unknown settings group")

	// ErrInvalidValue возвращается, если значение не JSON-объект
	ErrInvalidValue = errors.New("settings value must be a JSON object")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings.service: internal error")
)
