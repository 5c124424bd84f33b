package utils

import (
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrorRecordNotFound = errors.New("record not found")

type ErrorKind string

const (
	KindValidation  ErrorKind = "ValidationError"
	KindNotFound    ErrorKind = "NotFound"
	KindTransaction ErrorKind = "TransactionFailure"
	KindUnknown     ErrorKind = "UnknownFailure"
)

// AppError is the structured failure every model operation returns.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Err: ErrorRecordNotFound}
}

func NewTransactionError(message string, err error) *AppError {
	return &AppError{Kind: KindTransaction, Message: message, Err: err}
}

// AsAppError classifies err. AppErrors pass through; gorm's not-found becomes
// NotFound, a MySQL duplicate key becomes ValidationError and anything else is
// UnknownFailure carrying the store's message.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrorRecordNotFound) {
		return &AppError{Kind: KindNotFound, Message: "record not found", Err: err}
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return &AppError{Kind: KindValidation, Message: "duplicate entry", Err: err}
	}
	return &AppError{Kind: KindUnknown, Message: err.Error(), Err: err}
}

func IsNotFound(err error) bool {
	appErr := AsAppError(err)
	return appErr != nil && appErr.Kind == KindNotFound
}

// HTTPStatus maps a failure kind onto a response status.
func HTTPStatus(err error) int {
	appErr := AsAppError(err)
	if appErr == nil {
		return http.StatusOK
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
