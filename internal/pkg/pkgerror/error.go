package pkgerror

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
)

// Exception is the classifiable capability: an error that declares the
// markers it implements, most specific first.
type Exception interface {
	error
	Markers() []Marker
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message
// and the markers used to classify it.
type Error struct {
	err     error
	msg     string
	markers []Marker
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		if e.msg != "" {
			return e.msg + ": " + e.err.Error()
		}
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	names := make([]string, 0, len(e.markers))
	for _, m := range e.Markers() {
		names = append(names, m.String())
	}

	return fmt.Sprintf(
		"Markers: [%s], Message: %s, Underlying Error: %v",
		strings.Join(names, ", "),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Markers returns the declared markers in declaration order, then the
// markers of the nearest wrapped Exception, then MarkerException. Duplicates
// keep their first position.
func (e *Error) Markers() []Marker {
	out := make([]Marker, 0, len(e.markers)+1)
	add := func(ms []Marker) {
		for _, m := range ms {
			if m != MarkerException && !slices.Contains(out, m) {
				out = append(out, m)
			}
		}
	}

	add(e.markers)
	if inner, ok := As(e.err); ok {
		add(inner.Markers())
	}

	return append(out, MarkerException)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// As returns the first error in err's chain that declares markers.
func As(err error) (Exception, bool) {
	var exc Exception
	if !errors.As(err, &exc) {
		return nil, false
	}
	return exc, true
}

func new(err error, msg string, markers ...Marker) error {
	return &Error{err: err, msg: msg, markers: markers}
}

// New creates an error with msg that declares the given markers.
func New(msg string, markers ...Marker) error {
	return new(nil, msg, markers...)
}

// Wrap creates an error wrapping err that declares the given markers.
func Wrap(err error, msg string, markers ...Marker) error {
	return new(err, msg, markers...)
}

// NewServer creates a server error with the provided error.
func NewServer(err error) error {
	return new(err, "Internal server error", MarkerServerError)
}

// NewBadRequest creates an error for a malformed request.
func NewBadRequest(msg string) error {
	return new(nil, msg, MarkerBadRequest)
}

// NewInvalidInput creates a validation error for invalid input with the underlying error.
func NewInvalidInput(err error) error {
	return new(err, "validation error", MarkerUnprocessableEntity)
}

// NewNotFound creates an error for a missing resource.
func NewNotFound(msg string) error {
	return new(ErrNotFound, msg, MarkerNotFound)
}

// NewConflict creates an error for a conflicting state, such as a duplicate entry.
func NewConflict(msg string) error {
	return new(nil, msg, MarkerConflict)
}

// NewForbidden creates an error for a forbidden action.
func NewForbidden(msg string) error {
	return new(nil, msg, MarkerForbidden)
}
