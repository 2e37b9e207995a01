// Package errs provides standardized error types for the warehouse application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - OperationNotAllowedError: For structural or state-machine rule violations
//   - ResourceConflictError: For concurrent-booking constraint violations
//   - TimeoutError: For dependency lookups that exceeded their bound
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     For input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
