package errs

import "errors"

// Сентинельные ошибки сервисного слоя. "Не найдено" и "нет прав на просмотр"
// намеренно неразличимы для вызывающего: обе приводят к ErrLocationNotFound.
var (
	ErrLocationNotFound   = errors.New("location not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)
