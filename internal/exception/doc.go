// Package exception maps marker-tagged dispatch errors to HTTP responses.
//
// The Strategy listens on the dispatch error pipeline. When a handler fails
// with an error that declares a marker present in the configured table, the
// strategy installs an error view named after the marker (for example
// pkgerror.NotFound renders "error/not-found"), sets the mapped status code,
// and clears the event's error tag so the generic handlers skip it. Any other
// event is left untouched.
//
// Classification walks the markers in the order the error declares them and
// the first one found in the table wins. pkgerror.Error declares its specific
// markers first, then the markers of the error it wraps, and
// pkgerror.MarkerException last, so pkgerror.Wrap keeps the wrapped
// classification unless the wrapper declares its own.
//
// Tests of the dispatch error pipeline (this package and pkgmvc) use testify
// require and assert. The other packages use plain testing with t.Fatalf.
package exception
