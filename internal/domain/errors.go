package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a missing or malformed field. It never ends the session; the user re-enters the value.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// MissingFieldsError lists every required field that was absent, in request order.
type MissingFieldsError struct {
	Fields []string
}

func (e MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// PaymentSelectionError blocks submission until a payment mode is fully selected.
type PaymentSelectionError struct {
	Msg string
}

func (e PaymentSelectionError) Error() string {
	if e.Msg == "" {
		return "payment method not selected"
	}
	return e.Msg
}

// StorageError wraps insert/connection failures. Msg is shown to the caller verbatim.
type StorageError struct {
	Msg string
	Err error
}

func (e StorageError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "storage error"
	}
}

func (e StorageError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports both single-field and missing-field failures.
func IsValidation(err error) bool {
	var target ValidationError
	if errors.As(err, &target) {
		return true
	}
	var missing MissingFieldsError
	return errors.As(err, &missing)
}

func IsPaymentSelection(err error) bool {
	var target PaymentSelectionError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}
