// Package errs provides standardized error types for the fleet dispatch service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an entity cannot be found
//   - VersionConflictError: an optimistic version check failed
//   - AlreadyExistsError: an insert collided with an existing key
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Transport adapters classify errors with errors.Is against the sentinels:
// the validation family maps to 400, ErrObjectNotFound to 404, and
// ErrVersionConflict or ErrAlreadyExists to 409.
package errs
