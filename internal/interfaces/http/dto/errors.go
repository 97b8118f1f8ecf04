package dto

import (
	"net/http"

	"github.com/claimgate/backend/internal/domain/claim"
)

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation and input error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the request body exceeds the size limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Claim rejection error codes. These mirror the validation rules: every
// rejected candidate maps to exactly one of the first three.
const (
	// ErrCodeItemNotClaimable is used when the item is not in the claimable catalog
	ErrCodeItemNotClaimable = "ERR_ITEM_NOT_CLAIMABLE"
	// ErrCodeNotEntitled is used when the address has no positive entitlement for the item
	ErrCodeNotEntitled = "ERR_NOT_ENTITLED"
	// ErrCodeAlreadyFulfilled is used when the (address, item) pair was already claimed
	ErrCodeAlreadyFulfilled = "ERR_ALREADY_FULFILLED"
	// ErrCodeStoreUnavailable is used when the eligibility store cannot be queried
	ErrCodeStoreUnavailable = "ERR_STORE_UNAVAILABLE"
	// ErrCodeBatchTooLarge is used when a single claim message exceeds the batch ceiling
	ErrCodeBatchTooLarge = "ERR_BATCH_TOO_LARGE"
	// ErrCodePublishFailed is used when admitted claims could not all be enqueued
	ErrCodePublishFailed = "ERR_PUBLISH_FAILED"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Claim
// rejections and downstream failures deliberately map to 400, never
// 5xx: the caller's claim was not accepted, and retrying with the same
// body is the correct recovery for transient store or queue faults.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeItemNotClaimable: http.StatusBadRequest,
	ErrCodeNotEntitled:      http.StatusBadRequest,
	ErrCodeAlreadyFulfilled: http.StatusBadRequest,
	ErrCodeStoreUnavailable: http.StatusBadRequest,
	ErrCodeBatchTooLarge:    http.StatusBadRequest,
	ErrCodePublishFailed:    http.StatusBadRequest,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ReasonToErrorCode converts a claim rejection reason to its API error code
func ReasonToErrorCode(reason string) string {
	switch reason {
	case claim.ReasonItemNotClaimable:
		return ErrCodeItemNotClaimable
	case claim.ReasonNotEntitled:
		return ErrCodeNotEntitled
	case claim.ReasonAlreadyFulfilled:
		return ErrCodeAlreadyFulfilled
	default:
		return ErrCodeUnknown
	}
}
