package errors

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/dropforge/nft-hub/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest          ErrorCode = "bad_request"
	ErrCodeNotFound            ErrorCode = "not_found"
	ErrCodeValidationFailed    ErrorCode = "validation_failed"
	ErrCodeUnauthorized        ErrorCode = "unauthorized"
	ErrCodeForbidden           ErrorCode = "forbidden"
	ErrCodeConflict            ErrorCode = "conflict"
	ErrCodeInsufficientCredits ErrorCode = "insufficient_credits"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain translates service-layer sentinel errors into APIErrors. Errors
// with no mapping pass through unchanged and present as internal errors.
func FromDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrIdentityMissing):
		return NewUnauthorizedError("Missing identity headers", err.Error())
	case errors.Is(err, domain.ErrEntityNotFound),
		errors.Is(err, domain.ErrProjectWalletNotFound),
		errors.Is(err, domain.ErrCustomerWalletNotFound):
		return NewNotFoundError("Not found", err.Error())
	case errors.Is(err, domain.ErrInsufficientCredits):
		return &APIError{Code: ErrCodeInsufficientCredits, Message: "Insufficient credits", Details: err.Error()}
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSupplyExhausted),
		errors.Is(err, domain.ErrSupplyBelowMints):
		return NewConflictError("Operation not allowed in the current state", err.Error())
	case errors.Is(err, domain.ErrShareSumMismatch),
		errors.Is(err, domain.ErrTooManyCreators),
		errors.Is(err, domain.ErrPolygonSingleCreator),
		errors.Is(err, domain.ErrVerifiedCreatorMismatch),
		errors.Is(err, domain.ErrInvalidSolanaAddress),
		errors.Is(err, domain.ErrInvalidEVMAddress),
		errors.Is(err, domain.ErrBlockchainNotSupported),
		errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrSymbolTooLong),
		errors.Is(err, domain.ErrMetadataURIMissing):
		return NewValidationError(err.Error())
	default:
		return err
	}
}
