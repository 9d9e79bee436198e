package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template and tag errors
	ErrMalformedTemplate  ErrorCode = "MALFORMED_TEMPLATE"
	ErrMissingPlaceholder ErrorCode = "MISSING_PLACEHOLDER"
	ErrMissingAttribute   ErrorCode = "MISSING_ATTRIBUTE"
	ErrUnterminatedTag    ErrorCode = "UNTERMINATED_TAG"
	ErrInvalidTag         ErrorCode = "INVALID_TAG"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileTooLarge ErrorCode = "FILE_TOO_LARGE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Conversion errors
	ErrCharsetConversion ErrorCode = "CHARSET_CONVERSION"
	ErrXHTMLInvalid      ErrorCode = "XHTML_INVALID"
)

// HtmlifyError represents a structured error with code and details
type HtmlifyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HtmlifyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HtmlifyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HtmlifyError) Is(target error) bool {
	var targetErr *HtmlifyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HtmlifyError with the given code and message
func New(code ErrorCode, message string) *HtmlifyError {
	return &HtmlifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HtmlifyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HtmlifyError {
	return &HtmlifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HtmlifyError
func Wrap(err error, code ErrorCode, message string) *HtmlifyError {
	if err == nil {
		return nil
	}
	return &HtmlifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HtmlifyError {
	if err == nil {
		return nil
	}
	return &HtmlifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HtmlifyError) WithDetail(key string, value interface{}) *HtmlifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HtmlifyError) WithDetails(details map[string]interface{}) *HtmlifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var htmlifyErr *HtmlifyError
	if errors.As(err, &htmlifyErr) {
		return htmlifyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HtmlifyError
func GetErrorCode(err error) ErrorCode {
	var htmlifyErr *HtmlifyError
	if errors.As(err, &htmlifyErr) {
		return htmlifyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HtmlifyError
func GetErrorDetails(err error) map[string]interface{} {
	var htmlifyErr *HtmlifyError
	if errors.As(err, &htmlifyErr) {
		return htmlifyErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status: 1 for invalid
// parameters or configuration, 2 for file errors, 3 for failed charset
// conversion.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case ErrFileNotFound, ErrFileAccess, ErrFileTooLarge, ErrFileWrite:
		return 2
	case ErrCharsetConversion:
		return 3
	default:
		return 1
	}
}
