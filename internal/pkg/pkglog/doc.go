// Package pkglog configures the process-wide slog logger: JSON records with
// "ts", "severity", a short source location, the service name and the
// request correlation ID when one is in the context.
package pkglog
