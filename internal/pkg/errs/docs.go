// Package errs provides standardized error types for the order-processing application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for each class of failure the core can report:
//   - ObjectNotFoundError: an order, driver, staff member or menu item is absent
//   - ObjectAlreadyExistsError: a unique key (order number, username, email) is already taken
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation failures
//   - IdentifierFormatError: a stored identifier does not match the format the allocator produces
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies wrapped errors
//
// Transport adapters map the sentinels to status codes: not found to 404, already exists
// to 409, the value errors to 400 and identifier format errors to 500.
package errs
