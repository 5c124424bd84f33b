package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestHTTPStatus_MapsErrorKinds(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", NewNotFoundError("sale not found"), http.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{"duplicate key", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, http.StatusBadRequest},
		{"transaction", NewTransactionError("failed to create sale", errors.New("deadlock")), http.StatusInternalServerError},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.expected {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.expected, got)
		}
	}
}

func TestAsAppError_KeepsMessagesAndCause(t *testing.T) {
	cause := errors.New("deadlock")
	appErr := AsAppError(fmt.Errorf("wrapped: %w", NewTransactionError("failed to update sale", cause)))
	if appErr.Kind != KindTransaction {
		t.Fatalf("expected %s, got %s", KindTransaction, appErr.Kind)
	}
	if appErr.Error() != "failed to update sale" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}

	unknown := AsAppError(errors.New("connection reset"))
	if unknown.Kind != KindUnknown || unknown.Error() != "connection reset" {
		t.Fatalf("expected UnknownFailure carrying the store message, got %+v", unknown)
	}
	if AsAppError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewNotFoundError("customer not found")) {
		t.Fatalf("expected NotFound AppError to be not-found")
	}
	if !IsNotFound(gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound to be not-found")
	}
	if IsNotFound(NewValidationError("customer_name is required")) {
		t.Fatalf("validation error reported as not-found")
	}
}
