package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, also used as the rejection notification
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is reports whether target carries the same business error code, so that copies made by
// WithMessage and WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, e.g. to name the missing material.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Workshop rejections
	ErrNotEnoughGold = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOT_ENOUGH_GOLD",
		"Not enough gold",
		"",
	)

	ErrInsufficientMaterials = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_MATERIALS",
		"Not enough materials",
		"",
	)

	ErrBoxNotFound = NewBaseError(
		http.StatusNotFound,
		"BOX_NOT_FOUND",
		"Unknown supply box",
		"",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Unknown recipe",
		"",
	)

	// Shop rejections
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer is not in the shop",
		"",
	)

	ErrCustomerAlreadyServed = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_ALREADY_SERVED",
		"Customer has already been served",
		"",
	)

	ErrOutOfStock = NewBaseError(
		http.StatusUnprocessableEntity,
		"OUT_OF_STOCK",
		"Item is out of stock",
		"",
	)

	ErrWrongItemType = NewBaseError(
		http.StatusUnprocessableEntity,
		"WRONG_ITEM_TYPE",
		"Customer wants a different type of item",
		"",
	)

	ErrCustomerCannotAfford = NewBaseError(
		http.StatusUnprocessableEntity,
		"CUSTOMER_CANNOT_AFFORD",
		"Customer cannot afford this item",
		"",
	)

	ErrInvalidSaleAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SALE_ACTION",
		"Unknown sale action",
		"",
	)

	// Day cycle
	ErrWrongPhase = NewBaseError(
		http.StatusConflict,
		"WRONG_PHASE",
		"That is not possible right now",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Persistence-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
