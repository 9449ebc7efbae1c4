// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightNotFound is returned when an insight is not in the user's working set.
	ErrInsightNotFound = errors.New("insight not found")

	// ErrInvalidInsightPriority is returned when a priority filter is not high, medium or low.
	ErrInvalidInsightPriority = errors.New("invalid insight priority")

	// ErrInvalidInsightType is returned when a type filter is not a known insight type.
	ErrInvalidInsightType = errors.New("invalid insight type")

	// ErrInsightSourceUnavailable is returned when the inputs for generation cannot be loaded.
	ErrInsightSourceUnavailable = errors.New("insight source data unavailable")

	// ErrInsightStoreUnavailable is returned when the insight working set cannot be read or written.
	ErrInsightStoreUnavailable = errors.New("insight store unavailable")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInsightNotFound        InsightErrorCode = "INS-010001"
	ErrCodeInvalidInsightPriority InsightErrorCode = "INS-010002"
	ErrCodeInvalidInsightType     InsightErrorCode = "INS-010003"
	ErrCodeInvalidInsightID       InsightErrorCode = "INS-010004"

	// Internal errors (99XXXX)
	ErrCodeInsightSourceUnavailable InsightErrorCode = "INS-990001"
	ErrCodeInsightStoreUnavailable  InsightErrorCode = "INS-990002"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
