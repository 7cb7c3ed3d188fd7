package pkgmvc

import "net/http"

// Response is the status and headers that will be written for an Event. When
// a Response is installed as an event result it is treated as finished: no
// view is rendered and strategies leave the event alone.
type Response struct {
	statusCode int
	header     http.Header
}

// NewResponse returns a response with status 200 and no headers.
func NewResponse() *Response {
	return &Response{statusCode: http.StatusOK, header: http.Header{}}
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// SetStatusCode sets the HTTP status code.
func (r *Response) SetStatusCode(code int) {
	r.statusCode = code
}

// Header returns the headers to send with the response.
func (r *Response) Header() http.Header {
	return r.header
}

// Write copies the headers and status to w.
func (r *Response) Write(w http.ResponseWriter) {
	for k, vv := range r.header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(r.statusCode)
}
