package auth

import "errors"

var (
	// ErrInvalidCredentials неверный email или пароль (или администратор отключён)
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken токен не прошёл проверку
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
