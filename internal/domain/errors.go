package domain

import "errors"

// сентинельные ошибки слоя базы данных,
// сервисный слой переводит их в классифицированные ошибки apperrors
var (
	ErrUserAlreadyExists = errors.New("user with such email already exists")
	ErrValidation        = errors.New("persistence validation failed")
)
