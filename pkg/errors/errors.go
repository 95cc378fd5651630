package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrLoanGuideNotFound   = errors.New("loan guide not found")
	ErrInvalidLoanID       = errors.New("invalid loan id")
	ErrUnknownScheduleType = errors.New("unknown schedule type")
	ErrCacheMiss           = errors.New("cache miss")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeLoanGuideNotFound   = "LOAN_GUIDE_NOT_FOUND"
	ErrCodeInvalidLoanID       = "INVALID_LOAN_ID"
	ErrCodeUnknownScheduleType = "UNKNOWN_SCHEDULE_TYPE"
	ErrCodeDatabaseError       = "DATABASE_ERROR"
	ErrCodeCacheError          = "CACHE_ERROR"
	ErrCodeExportError         = "EXPORT_ERROR"
)

// CodeOf returns the code of the first BusinessError in err's chain.
func CodeOf(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Wrap common errors with business context
func WrapLoanGuideNotFound(loanID string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanGuideNotFound,
		fmt.Sprintf("Loan guide for loan %s not found", loanID),
		ErrLoanGuideNotFound,
	)
}

func WrapInvalidLoanID(loanID string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidLoanID,
		fmt.Sprintf("Loan ID %q is not a valid UUID", loanID),
		ErrInvalidLoanID,
	)
}

func WrapUnknownScheduleType(scheduleType string) *BusinessError {
	return NewBusinessError(
		ErrCodeUnknownScheduleType,
		fmt.Sprintf("Schedule type %q is not supported", scheduleType),
		ErrUnknownScheduleType,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

func WrapExportError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeExportError,
		"timeline export failed",
		err,
	)
}
