// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It helps keep error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing markers, a closed set of identifiers an error can declare to
//     say which kind of failure it represents (not found, forbidden, ...).
//   - Providing a structured Error type that carries a user-facing message and
//     its declared markers, which the dispatch error pipeline maps to HTTP
//     status codes and error views at the edge.
package pkgerror
