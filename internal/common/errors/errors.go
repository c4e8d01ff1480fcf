// Package errors provides standardized error handling for the activities API.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotSignedUp      ErrorCode = "NOT_SIGNED_UP"
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError is a structured application error that maps onto an HTTP status.
// Detail is the client-visible message written into the response envelope.
type APIError struct {
	Code   ErrorCode `json:"code"`
	Detail string    `json:"detail"`
	Status int       `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Detail)
}

// NewActivityNotFoundError creates the 404 error for an unknown activity name.
func NewActivityNotFoundError(name string) *APIError {
	return &APIError{
		Code:   ErrCodeActivityNotFound,
		Detail: "Activity not found",
		Status: http.StatusNotFound,
	}
}

// NewAlreadySignedUpError creates the conflict error for a duplicate signup.
func NewAlreadySignedUpError(email, activity string) *APIError {
	return &APIError{
		Code:   ErrCodeAlreadySignedUp,
		Detail: fmt.Sprintf("%s is already signed up for %s", email, activity),
		Status: http.StatusBadRequest,
	}
}

// NewNotSignedUpError creates the conflict error for removing an absent registration.
func NewNotSignedUpError(email, activity string) *APIError {
	return &APIError{
		Code:   ErrCodeNotSignedUp,
		Detail: fmt.Sprintf("%s is not signed up for %s", email, activity),
		Status: http.StatusBadRequest,
	}
}

// NewMissingParameterError creates the error for an absent required query parameter.
func NewMissingParameterError(param string) *APIError {
	return &APIError{
		Code:   ErrCodeMissingParameter,
		Detail: fmt.Sprintf("Missing required query parameter: %s", param),
		Status: http.StatusBadRequest,
	}
}
