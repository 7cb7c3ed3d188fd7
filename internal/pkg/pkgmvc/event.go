package pkgmvc

import "net/http"

// ErrorKind tags the kind of failure carried by an Event. The zero value means
// no error.
type ErrorKind string

const (
	// ErrorException is set when a handler returned an error during dispatch.
	ErrorException ErrorKind = "error-exception"
	// ErrorRouterNoMatch is set when no route matched the request path.
	ErrorRouterNoMatch ErrorKind = "error-router-no-match"
	// ErrorMethodNotAllowed is set when the path matched but the method did not.
	ErrorMethodNotAllowed ErrorKind = "error-method-not-allowed"
)

// Event describes a request whose dispatch failed, along with the slots for
// its eventual response. It is owned by a single request and is not safe for
// concurrent use.
type Event struct {
	request   *http.Request
	errKind   ErrorKind
	exception error
	result    any
	response  *Response
}

// NewEvent creates an event for r with no error, result or response.
func NewEvent(r *http.Request) *Event {
	return &Event{request: r}
}

// Request returns the request being dispatched.
func (e *Event) Request() *http.Request {
	return e.request
}

// Error returns the error kind tag, empty when there is no error.
func (e *Event) Error() ErrorKind {
	return e.errKind
}

// SetError replaces the error kind tag. Passing "" marks the error as handled.
func (e *Event) SetError(kind ErrorKind) {
	e.errKind = kind
}

// Exception returns the error attached to the event, if any.
func (e *Event) Exception() error {
	return e.exception
}

// SetException attaches err to the event.
func (e *Event) SetException(err error) {
	e.exception = err
}

// Result returns the current result: nil, a *ViewModel, a *Response, or any
// value produced by a handler.
func (e *Event) Result() any {
	return e.result
}

// SetResult replaces the result.
func (e *Event) SetResult(v any) {
	e.result = v
}

// Response returns the response, or nil when none has been created yet.
func (e *Event) Response() *Response {
	return e.response
}

// SetResponse replaces the response.
func (e *Event) SetResponse(r *Response) {
	e.response = r
}
