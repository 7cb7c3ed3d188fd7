// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and converts
// panics into errors so that long running work such as the HTTP server loop
// does not crash the process silently.
package pkgroutine
