package graphql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"
)

var (
	// ErrNoData is returned when the response carries no value for the operation's field.
	ErrNoData = errors.New("graphql: response has no data")
	// ErrUnavailable is returned while the circuit breaker rejects calls.
	ErrUnavailable = errors.New("graphql: backend unavailable")
)

// Error wraps a failed operation.
type Error struct {
	Operation string
	// Remote is set when the server answered with a GraphQL error payload.
	Remote bool
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("graphql %s: %v", e.Operation, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err is an error reported by the GraphQL server.
func IsRemote(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Remote
}

// wrapError classifies an error returned by the transport.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{Operation: op, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	return &Error{Operation: op, Remote: isRemoteMessage(err), Err: err}
}

// isRemoteMessage recognises errors decoded from the "errors" array of a response.
func isRemoteMessage(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "graphql: ") && !strings.Contains(msg, "non-200 status code")
}
