package compare

import (
	"errors"
	"fmt"
)

// InvalidInputError is returned when user input fails validation.
type InvalidInputError struct {
	Reason string
}

// Error returns the validation failure reason.
func (e *InvalidInputError) Error() string { return e.Reason }

// FetchError is returned when pageviews could not be retrieved from the API.
type FetchError struct {
	Reason string
	Cause  error
}

// Error returns the fetch failure reason, appended with the cause, if any.
func (e *FetchError) Error() string {
	if e.Cause == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
}

// Unwrap returns the cause of the fetch failure.
func (e *FetchError) Unwrap() error { return e.Cause }

// IsUserError reports whether the error carries a message meant to be
// shown to the user as-is.
func IsUserError(err error) bool {
	var inputErr *InvalidInputError
	var fetchErr *FetchError
	return errors.As(err, &inputErr) || errors.As(err, &fetchErr)
}
