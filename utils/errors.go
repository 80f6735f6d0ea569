package utils

import "net/http"

// AppError membawa status HTTP bersama pesan error sehingga setiap
// handler memetakan kegagalan secara deterministik.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewConflictError untuk pelanggaran prasyarat state: unit tidak
// available, booking sudah diproses, tower masih punya unit.
func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}
