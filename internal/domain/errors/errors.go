package errors

import (
	"net/http"

	"autobid/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
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
	return e.message
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

// Predefined error types
var (
	// Authentication and authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrNotAdmin = NewBaseError(
		http.StatusForbidden,
		"NOT_ADMIN",
		"Admin access required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrIdentityUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"IDENTITY_UNSUPPORTED",
		"Operation not supported by the identity provider",
		"",
	)

	ErrIdentityFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_FAILED",
		"Identity provider request failed",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidDeleteRequest = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid delete request",
		"",
	)

	ErrNotesRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Notes are required",
		"",
	)

	ErrReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Rejection reason is required",
		"",
	)

	ErrInvalidFile = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE",
		"Invalid upload",
		"",
	)

	// Location errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrLocationNameTaken = NewBaseError(
		http.StatusConflict,
		"LOCATION_NAME_TAKEN",
		"A location with this name already exists",
		"",
	)

	ErrLocationInUse = NewBaseError(
		http.StatusConflict,
		"LOCATION_IN_USE",
		"Failed to delete: may have child records",
		"",
	)

	ErrLocationParentRequired = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_PARENT_REQUIRED",
		"Parent location is required",
		"",
	)

	// Listing errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrCancelledStatusNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"STATUS_NOT_FOUND",
		"Cancelled status not found",
		"",
	)

	ErrAuctionStatusNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"STATUS_NOT_FOUND",
		"Auction status not found",
		"",
	)

	ErrListingNotPending = NewBaseError(
		http.StatusConflict,
		"LISTING_NOT_PENDING",
		"Listing is not pending approval",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrSelfDeletion = NewBaseError(
		http.StatusBadRequest,
		"SELF_DELETION",
		"You cannot delete your own account",
		"",
	)

	ErrNoUsersToDelete = NewBaseError(
		http.StatusBadRequest,
		"NO_USERS_TO_DELETE",
		"No valid users to delete",
		"",
	)

	// KYC errors
	ErrKycNotFound = NewBaseError(
		http.StatusNotFound,
		"KYC_NOT_FOUND",
		"KYC document not found",
		"",
	)

	ErrKycStatusNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"STATUS_NOT_FOUND",
		"KYC status not found",
		"",
	)

	ErrKycNotReviewable = NewBaseError(
		http.StatusConflict,
		"KYC_NOT_REVIEWABLE",
		"KYC document has already been reviewed",
		"",
	)

	// Transaction errors
	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Transaction not found",
		"",
	)

	ErrTransactionNotApprovable = NewBaseError(
		http.StatusConflict,
		"TRANSACTION_NOT_APPROVABLE",
		"Transaction cannot be approved",
		"",
	)

	ErrTransactionNotRejectable = NewBaseError(
		http.StatusConflict,
		"TRANSACTION_NOT_REJECTABLE",
		"Transaction cannot be rejected",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// Vehicle errors
	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"Vehicle entry not found",
		"",
	)

	ErrVehicleNameTaken = NewBaseError(
		http.StatusConflict,
		"VEHICLE_NAME_TAKEN",
		"A vehicle entry with this name already exists",
		"",
	)

	ErrVehicleInUse = NewBaseError(
		http.StatusConflict,
		"VEHICLE_IN_USE",
		"Failed to delete: vehicle entry is in use",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILED",
		"Object storage request failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
