package spacex

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupted indicates the caller cancelled the operation before the
	// network round trip completed.
	ErrInterrupted = errors.New("launch request interrupted")

	// ErrFetchDetails indicates a launch detail could not be produced: the id
	// was empty, or the server responded without a launch for that id.
	ErrFetchDetails = errors.New("launch details unavailable")

	// ErrInvalidPageSize indicates a launch list was requested with a page
	// size less than one.
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// RequestFailedMessage is the user-facing message carried by every
// RequestError.
const RequestFailedMessage = "Something went wrong!"

// RequestError indicates the launch API could not be reached or reported a
// failure. Message is safe to display; Err holds the cause for diagnostics.
type RequestError struct {
	Message string
	Err     error
}

func newRequestError(format string, args ...interface{}) *RequestError {
	return &RequestError{
		Message: RequestFailedMessage,
		Err:     fmt.Errorf(format, args...),
	}
}

func (e *RequestError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s; error: %s", e.Message, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *RequestError) Unwrap() error {
	return e.Err
}
