// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Validation errors: the submission itself is bad. Never retried.
	ErrCodeProfileMissingFields ErrorCode = "PROFILE_MISSING_FIELDS"
	ErrCodeProfileInvalidValues ErrorCode = "PROFILE_INVALID_VALUES"
	ErrCodeParseFailed          ErrorCode = "PARSE_ERROR"

	// Pipeline errors.
	ErrCodeBlindspotFloorViolated ErrorCode = "BLINDSPOT_FLOOR_VIOLATED"
	ErrCodeMatchingFailed         ErrorCode = "MATCHING_FAILED"
	ErrCodeExplanationFailed      ErrorCode = "EXPLANATION_FAILED"
	ErrCodeResponseBuildFailed    ErrorCode = "RESPONSE_BUILD_FAILED"

	// Knowledge base / infrastructure errors.
	ErrCodeCatalogUnavailable       ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeCatalogQueryFailed       ErrorCode = "CATALOG_QUERY_FAILED"
	ErrCodeInvalidQueryType         ErrorCode = "INVALID_QUERY_TYPE"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeSearchQueryFailed        ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout            ErrorCode = "SEARCH_TIMEOUT"
	ErrCodeDigestSendFailed         ErrorCode = "DIGEST_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewProfileMissingFieldsError creates a non-retryable validation error
// listing the required fields the submission left empty.
func NewProfileMissingFieldsError(missing []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileMissingFields,
		Message:   "Required profile fields are missing",
		Details:   fmt.Sprintf("missing: %v", missing),
		Retryable: false,
		Metadata:  map[string]interface{}{"missingFields": missing},
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileInvalidValuesError creates a non-retryable validation error for
// out-of-range field values.
func NewProfileInvalidValuesError(invalid []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileInvalidValues,
		Message:   "Profile field values are out of range",
		Details:   fmt.Sprintf("invalid: %v", invalid),
		Retryable: false,
		Metadata:  map[string]interface{}{"invalidFields": invalid},
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogUnavailableError signals an empty or unreachable knowledge base.
func NewCatalogUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogUnavailable,
		Message:   "Opportunity knowledge base is currently unavailable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogQueryFailedError creates a retryable catalog query error.
func NewCatalogQueryFailedError(queryType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogQueryFailed,
		Message:   "Catalog query execution error",
		Details:   fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidQueryTypeError creates a non-retryable invalid query type error.
func NewInvalidQueryTypeError(queryType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidQueryType,
		Message:   "Unsupported catalog query type",
		Details:   fmt.Sprintf("queryType: %s", queryType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError creates a retryable opportunity search error.
func NewSearchQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Opportunity search query error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a retryable opportunity search timeout.
func NewSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "Opportunity search timeout",
		Details:   "search call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBlindspotFloorViolatedError signals the internal-consistency failure of
// the blindspot rule set producing fewer than three entries. This is a bug
// in the rules, not a recoverable condition.
func NewBlindspotFloorViolatedError(count int) *StandardError {
	return &StandardError{
		Code:      ErrCodeBlindspotFloorViolated,
		Message:   "Blindspot rule set produced fewer than the minimum of 3 entries",
		Details:   fmt.Sprintf("generated: %d", count),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMatchingFailedError wraps unexpected matcher failures.
func NewMatchingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMatchingFailed,
		Message:   "Opportunity matching failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExplanationFailedError wraps unexpected renderer failures.
func NewExplanationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExplanationFailed,
		Message:   "Explanation rendering failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseBuildFailedError wraps response envelope failures.
func NewResponseBuildFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseBuildFailed,
		Message:   "Response payload build failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDigestSendFailedError creates a retryable notification delivery error.
func NewDigestSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDigestSendFailed,
		Message:   "Recommendation digest delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError converts an unexpected failure into the generic error
// surfaced at the orchestration boundary.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "An unexpected error occurred while processing your profile. Please try again.",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes.
// The codes are identical on both sides.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeProfileMissingFields:     "PROFILE_MISSING_FIELDS",
	ErrCodeProfileInvalidValues:     "PROFILE_INVALID_VALUES",
	ErrCodeParseFailed:              "PARSE_ERROR",
	ErrCodeBlindspotFloorViolated:   "BLINDSPOT_FLOOR_VIOLATED",
	ErrCodeMatchingFailed:           "MATCHING_FAILED",
	ErrCodeExplanationFailed:        "EXPLANATION_FAILED",
	ErrCodeResponseBuildFailed:      "RESPONSE_BUILD_FAILED",
	ErrCodeCatalogUnavailable:       "CATALOG_UNAVAILABLE",
	ErrCodeCatalogQueryFailed:       "CATALOG_QUERY_FAILED",
	ErrCodeInvalidQueryType:         "INVALID_QUERY_TYPE",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeSearchQueryFailed:        "SEARCH_QUERY_FAILED",
	ErrCodeSearchTimeout:            "SEARCH_TIMEOUT",
	ErrCodeDigestSendFailed:         "DIGEST_SEND_FAILED",
	ErrCodeInternal:                 "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCatalogUnavailable,
		ErrCodeCatalogQueryFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeSearchQueryFailed,
		ErrCodeDigestSendFailed:
		return 3 // retryable technical errors

	case ErrCodeSearchTimeout:
		return 2

	default:
		return 0 // validation and business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to its BPMN form.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, ok := BPMNErrorMapping[stdErr.Code]
	if !ok {
		bpmnCode = string(ErrCodeInternal)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}
