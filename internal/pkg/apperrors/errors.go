package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Batch and branch errors
var (
	ErrBatchNotFound       = errors.New("batch not found for the given year")
	ErrBatchAlreadyExists  = errors.New("batch with this year already exists")
	ErrBranchNotFound      = errors.New("branch not found in the batch")
	ErrBranchAlreadyExists = errors.New("branch already exists in the batch")
	ErrSeatNotAvailable    = errors.New("seat not available")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student does not exist")
	ErrRollNumberAlreadyExists = errors.New("student with this roll number already exists")
)

// Attendance errors
var (
	ErrAttendanceNotFound        = errors.New("attendance record not found")
	ErrAttendanceAlreadyRecorded = errors.New("attendance already recorded")
	ErrNoAbsenteesFound          = errors.New("no student found absent for this day")
	ErrAnalyticsEmpty            = errors.New("no analytics data for the given range")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrMobileNumberTaken = errors.New("mobile number already taken")
	ErrAdminExists       = errors.New("an admin account already exists")
)

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
