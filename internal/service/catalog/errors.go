package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция не найдена или не видна запрашивающему
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrUnknownKind возвращается для неподдерживаемого типа каталога
	ErrUnknownKind = errors.New("unknown catalog kind")

	// ErrDuplicateSlug возвращается, когда slug уже занят
	ErrDuplicateSlug = errors.New("slug is already in use")

	// ErrVersionConflict возвращается, если позицию изменили после чтения
	ErrVersionConflict = errors.New("catalog item was modified by someone else")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
