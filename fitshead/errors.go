package fitshead

import "fmt"

// Error types for fitshead operations
var (
	// ErrOpenFailed is returned when a file cannot be opened or parsed as FITS
	ErrOpenFailed = &HeaderError{Code: "OPEN_FAILED", Message: "could not open FITS file"}

	// ErrMalformedExtSpec is returned when an extension specifier has a non-integer version segment
	ErrMalformedExtSpec = &HeaderError{Code: "MALFORMED_EXT_SPEC", Message: "malformed extension specifier"}

	// ErrExtensionNotFound is returned when a lookup key matches no HDU in the file
	ErrExtensionNotFound = &HeaderError{Code: "EXT_NOT_FOUND", Message: "extension not found"}

	// ErrExtensionLookup is returned when a lookup key cannot resolve to exactly one HDU
	ErrExtensionLookup = &HeaderError{Code: "EXT_LOOKUP_FAILED", Message: "extension lookup failed"}
)

// HeaderError represents a structured error in fitshead operations.
// All user-facing failures are normalized into this one type so the
// CLI loop can catch it per file and keep going.
type HeaderError struct {
	Code    string                 // Error code for programmatic handling
	Message string                 // Human-readable error message
	Cause   error                  // Underlying error, if any
	Details map[string]interface{} // Additional context
}

// Error implements the error interface
func (e *HeaderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	if len(e.Details) > 0 {
		return fmt.Sprintf("[%s] %s (details: %v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *HeaderError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *HeaderError) WithCause(cause error) *HeaderError {
	return &HeaderError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   cause,
		Details: e.Details,
	}
}

// WithDetail adds a detail key-value pair to the error
func (e *HeaderError) WithDetail(key string, value interface{}) *HeaderError {
	details := make(map[string]interface{})
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &HeaderError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Details: details,
	}
}

// WithMessage overrides the error message
func (e *HeaderError) WithMessage(message string) *HeaderError {
	return &HeaderError{
		Code:    e.Code,
		Message: message,
		Cause:   e.Cause,
		Details: e.Details,
	}
}

// IsHeaderError checks if an error is a HeaderError
func IsHeaderError(err error) bool {
	_, ok := err.(*HeaderError)
	return ok
}

// GetErrorCode extracts the error code from a HeaderError
func GetErrorCode(err error) string {
	if hdrErr, ok := err.(*HeaderError); ok {
		return hdrErr.Code
	}
	return ""
}
