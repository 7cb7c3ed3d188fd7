// Package pkgmetrics records dispatch error outcomes.
//
// Components depend on the Recorder interface. NoopRecorder is the default so
// callers never need nil checks; Prometheus is wired in by the application
// when metrics are enabled.
package pkgmetrics
