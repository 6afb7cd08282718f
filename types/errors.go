package types

import (
	"errors"
	"fmt"
)

// Error codes carried by MinFraudError.
const (
	ErrCodeConfiguration    = "CONFIGURATION_ERROR"
	ErrCodeMissingAttribute = "MISSING_REQUIRED_ATTRIBUTE"
	ErrCodeInvalidType      = "INVALID_ATTRIBUTE_TYPE"
	ErrCodeInvalidTimeout   = "INVALID_TIMEOUT"
	ErrCodeInvalidTier      = "INVALID_SERVICE_TIER"
	ErrCodeConnection       = "CONNECTION_ERROR"
	ErrCodeService          = "SERVICE_ERROR"
	ErrCodeDecode           = "DECODE_ERROR"
)

// Sentinels for errors.Is classification.
var (
	ErrConfiguration = errors.New("minfraud: configuration error")
	ErrValidation    = errors.New("minfraud: invalid transaction")
	ErrConnection    = errors.New("minfraud: connection error")
	ErrService       = errors.New("minfraud: service error")
	ErrDecode        = errors.New("minfraud: decode error")
)

// MinFraudError is the single error type returned by the client packages.
type MinFraudError struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Field       string `json:"field,omitempty"`
	StatusCode  int    `json:"statusCode,omitempty"`
	ServiceCode string `json:"serviceCode,omitempty"`
	Err         error  `json:"-"`
}

func (e *MinFraudError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *MinFraudError) Unwrap() error {
	return e.Err
}

// Is maps the error code onto the package sentinels.
func (e *MinFraudError) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Code == ErrCodeConfiguration
	case ErrValidation:
		return e.IsValidation()
	case ErrConnection:
		return e.Code == ErrCodeConnection
	case ErrService:
		return e.Code == ErrCodeService
	case ErrDecode:
		return e.Code == ErrCodeDecode
	}
	return false
}

// IsValidation reports whether the error belongs to the validation family.
func (e *MinFraudError) IsValidation() bool {
	switch e.Code {
	case ErrCodeMissingAttribute, ErrCodeInvalidType, ErrCodeInvalidTimeout, ErrCodeInvalidTier:
		return true
	}
	return false
}

func NewConfigurationError(msg string) *MinFraudError {
	return &MinFraudError{Code: ErrCodeConfiguration, Message: msg}
}

// MissingRequiredAttribute is returned when ip or txn_id is absent or empty.
func MissingRequiredAttribute(field string) *MinFraudError {
	return &MinFraudError{
		Code:    ErrCodeMissingAttribute,
		Message: fmt.Sprintf("%s is required", field),
		Field:   field,
	}
}

func InvalidAttributeType(field, reason string) *MinFraudError {
	return &MinFraudError{
		Code:    ErrCodeInvalidType,
		Message: fmt.Sprintf("%s %s", field, reason),
		Field:   field,
	}
}

func InvalidTimeout(reason string) *MinFraudError {
	return &MinFraudError{
		Code:    ErrCodeInvalidTimeout,
		Message: "Timeout value " + reason,
		Field:   AttrTimeout,
	}
}

func InvalidServiceTier(value string) *MinFraudError {
	return &MinFraudError{
		Code:    ErrCodeInvalidTier,
		Message: fmt.Sprintf("requested_type must be standard or premium, got %q", value),
		Field:   AttrRequestedType,
	}
}

// ConnectionError covers non-success statuses, transport failures and timeouts.
// status is zero when no response was received.
func ConnectionError(status int, err error) *MinFraudError {
	msg := "the minFraud service could not be reached"
	if status != 0 {
		msg = fmt.Sprintf("the minFraud service responded with http error %d", status)
	}
	return &MinFraudError{
		Code:       ErrCodeConnection,
		Message:    msg,
		StatusCode: status,
		Err:        err,
	}
}

// ServiceError wraps an error code returned in-band in the response body.
func ServiceError(code string) *MinFraudError {
	return &MinFraudError{
		Code:        ErrCodeService,
		Message:     "Error message from minFraud: " + code,
		ServiceCode: code,
	}
}

func DecodeError(field, msg string) *MinFraudError {
	return &MinFraudError{
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("cannot decode %s: %s", field, msg),
		Field:   field,
	}
}
