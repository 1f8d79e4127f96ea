// Package errors defines the application errors that reach HTTP clients.
// Each carries a status code and a stable machine readable code.
package errors

import (
	"net/http"

	"shop/internal/errors"
)

// AppError is an error that knows how it is presented to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the value type behind every predefined error below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is compares error codes, so a WithDetails copy still matches its origin.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// WithDetails returns a copy of e with details set.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Accounts
var (
	ErrUserNotFound       = newError(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists  = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "user with this email already exists")
	ErrUserUpdateFailed   = newError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "failed to update user")
	ErrPasswordHashFailed = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "failed to process password")
)

// Authentication and authorization
var (
	// ErrInvalidCredentials is shared by unknown email and wrong password.
	ErrInvalidCredentials    = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "wrong email or password")
	ErrUnauthorized          = newError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
	ErrTokenGenerationFailed = newError(http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "failed to generate access token")
	ErrForbidden             = newError(http.StatusForbidden, "FORBIDDEN", "permission denied")
)

// Reference data
var (
	ErrRoleNotFound     = newError(http.StatusNotFound, "ROLE_NOT_FOUND", "role not found")
	ErrCategoryNotFound = newError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found")
)

// Products
var (
	// ErrProductNotFound also covers products owned by another merchant.
	ErrProductNotFound        = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
	ErrProductCodeConflict    = newError(http.StatusConflict, "PRODUCT_CODE_CONFLICT", "product code is already in use")
	ErrProductNotFulfilled    = newError(http.StatusConflict, "PRODUCT_NOT_FULFILLED", "product details are not fulfilled")
	ErrInvalidDetailsCategory = newError(http.StatusBadRequest, "INVALID_DETAILS_CATEGORY", "invalid details.category input")
	ErrMerchantIDRequired     = newError(http.StatusBadRequest, "INPUT_ERROR", "merchant id is required for search")
)

// Generic
var (
	ErrValidationFailed  = newError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrTooManyRequests   = newError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many requests, please try again later")
	ErrTransactionFailed = newError(http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed")
	ErrInternalError     = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
)

// DatabaseExecuteError wraps a driver error that has no domain meaning.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
