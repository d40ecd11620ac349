// описание закрытого набора типов ошибок для всего сервиса
package apperrors

import (
	"errors"
	"net/http"
)

// Kind - тип ошибки из закрытого набора.
// Каждый слой сервиса возвращает только ошибки этих типов,
// всё неожиданное оборачивается в KindInternal на границе.
type Kind int

const (
	KindBadRequest Kind = iota // некорректные данные в запросе
	KindUnauthorized           // нет/невалидный токен или неверные учётные данные
	KindForbidden              // субъект не владелец ресурса
	KindNotFound               // ресурс/пользователь не найден
	KindConflict               // нарушение уникальности (занятый email)
	KindInternal               // всё неклассифицированное
)

// метод для маппинга типа ошибки в HTTP статус
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError - классифицированная ошибка с сообщением для клиента.
// Внутренняя причина (Err) никогда не уходит клиенту, только в лог.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// конструкторы для каждого типа ошибки
func BadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// From приводит произвольную ошибку к *AppError.
// Нераспознанные ошибки оборачиваются в KindInternal с общим сообщением.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("На сервере произошла ошибка", err)
}
