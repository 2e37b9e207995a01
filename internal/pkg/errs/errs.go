package errs

import (
	"fmt"
	"strings"
	"time"
)

// Sentinel errors used as the targets of errors.Is for every error kind
// produced by this package.
var (
	ErrObjectNotFound      = fmt.Errorf("object not found")
	ErrValueIsInvalid      = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange   = fmt.Errorf("value is out of range")
	ErrValueIsRequired     = fmt.Errorf("value is required")
	ErrOperationNotAllowed = fmt.Errorf("operation not allowed")
	ErrResourceConflict    = fmt.Errorf("resource conflict")
	ErrTimeout             = fmt.Errorf("operation timed out")
)

// sanitize collapses line breaks so error messages stay single-line
// in logs regardless of the value that produced them.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object referenced by ID does not exist.
// ParamName identifies the kind of object (e.g. "item", "driver", "vehicle",
// "storage", "transportation") so callers can distinguish which reference
// failed to resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying failure (e.g. a database error or a lookup timeout).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the underlying failure.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// underlying failure.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// OperationNotAllowedError indicates that a structural or state-machine rule
// rejected the requested operation. Reason carries enough context (the current
// status, or the resource that is unavailable) to build a precise message.
type OperationNotAllowedError struct {
	Operation string
	Reason    string
	Cause     error
}

// NewOperationNotAllowedError creates an OperationNotAllowedError without a cause.
func NewOperationNotAllowedError(operation, reason string) *OperationNotAllowedError {
	return &OperationNotAllowedError{Operation: operation, Reason: reason}
}

// NewOperationNotAllowedErrorWithCause creates an OperationNotAllowedError
// wrapping the underlying failure.
func NewOperationNotAllowedErrorWithCause(operation, reason string, cause error) *OperationNotAllowedError {
	return &OperationNotAllowedError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *OperationNotAllowedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)", ErrOperationNotAllowed, e.Operation, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrOperationNotAllowed, e.Operation, e.Reason))
}

func (e *OperationNotAllowedError) Unwrap() error {
	return ErrOperationNotAllowed
}

// ResourceConflictError indicates that a concurrent write claimed an
// overlapping booking window for the same resource after the pre-check had
// passed. Unlike OperationNotAllowedError it is safe for the caller to retry.
type ResourceConflictError struct {
	ResourceKind string
	ResourceID   string
	Cause        error
}

// NewResourceConflictError creates a ResourceConflictError without a cause.
func NewResourceConflictError(resourceKind, resourceID string) *ResourceConflictError {
	return &ResourceConflictError{ResourceKind: resourceKind, ResourceID: resourceID}
}

// NewResourceConflictErrorWithCause creates a ResourceConflictError wrapping
// the underlying failure (e.g. a storage-level constraint violation).
func NewResourceConflictErrorWithCause(resourceKind, resourceID string, cause error) *ResourceConflictError {
	return &ResourceConflictError{ResourceKind: resourceKind, ResourceID: resourceID, Cause: cause}
}

func (e *ResourceConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s is booked for an overlapping window (cause: %s)",
			ErrResourceConflict, e.ResourceKind, e.ResourceID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s is booked for an overlapping window",
		ErrResourceConflict, e.ResourceKind, e.ResourceID))
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}

// TimeoutError indicates that a dependency lookup exceeded its bound.
// It is transient; retrying is at the caller's discretion.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
	Cause     error
}

// NewTimeoutError creates a TimeoutError without a cause.
func NewTimeoutError(operation string, timeout time.Duration) *TimeoutError {
	return &TimeoutError{Operation: operation, Timeout: timeout}
}

// NewTimeoutErrorWithCause creates a TimeoutError wrapping the context error
// that signalled the deadline.
func NewTimeoutErrorWithCause(operation string, timeout time.Duration, cause error) *TimeoutError {
	return &TimeoutError{Operation: operation, Timeout: timeout, Cause: cause}
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s after %s (cause: %s)", ErrTimeout, e.Operation, e.Timeout, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s after %s", ErrTimeout, e.Operation, e.Timeout))
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}
