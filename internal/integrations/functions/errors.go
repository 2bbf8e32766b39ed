package functions

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("functions client: internal error")

	// ErrFunctionFailed возвращается, когда функция ответила ошибкой
	ErrFunctionFailed = errors.New("functions client: function returned an error")

	// ErrNotConfigured возвращается, если URL функций не задан
	ErrNotConfigured = errors.New("functions client: not configured")
)

// FunctionError ошибка, которую вернула сама функция.
// Message показывается пользователю как есть.
type FunctionError struct {
	Function   string
	StatusCode int
	Message    string
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Function, e.Message, e.StatusCode)
}

func (e *FunctionError) Unwrap() error {
	return ErrFunctionFailed
}
