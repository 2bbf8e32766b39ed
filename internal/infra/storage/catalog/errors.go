package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("catalog.repository: item not found")

	// ErrDuplicateSlug возвращается, когда slug уже занят в таблице
	ErrDuplicateSlug = errors.New("catalog.repository: duplicate slug")

	// ErrVersionConflict возвращается, когда запись изменили после того, как её прочитал клиент
	ErrVersionConflict = errors.New("catalog.repository: item was modified concurrently")

	// ErrUnknownKind возвращается для неподдерживаемого типа каталога
	ErrUnknownKind = errors.New("catalog.repository: unknown catalog kind")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
