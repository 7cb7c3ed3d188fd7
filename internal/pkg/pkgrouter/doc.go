// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, logging, recovery and correlation ID propagation.
// Handler errors, unmatched routes and panics are turned into pkgmvc events
// and run through the dispatch error pipeline; whatever the listeners leave
// on the event is written back to the client.
package pkgrouter
