package pkgerror

import "net/http"

// Marker identifies a capability an error can declare. Markers are used purely
// for classification and carry no behavior of their own.
type Marker string

func (m Marker) String() string {
	return string(m)
}

// MarkerException is declared by every Error. It is the base capability and is
// always the last marker returned by Markers.
const MarkerException Marker = "pkgerror.Exception"

const (
	MarkerBadRequest              Marker = "pkgerror.BadRequest"
	MarkerUnauthorized            Marker = "pkgerror.Unauthorized"
	MarkerPaymentRequired         Marker = "pkgerror.PaymentRequired"
	MarkerForbidden               Marker = "pkgerror.Forbidden"
	MarkerNotFound                Marker = "pkgerror.NotFound"
	MarkerMethodNotAllowed        Marker = "pkgerror.MethodNotAllowed"
	MarkerNotAcceptable           Marker = "pkgerror.NotAcceptable"
	MarkerRequestTimeout          Marker = "pkgerror.RequestTimeout"
	MarkerConflict                Marker = "pkgerror.Conflict"
	MarkerGone                    Marker = "pkgerror.Gone"
	MarkerPreconditionFailed      Marker = "pkgerror.PreconditionFailed"
	MarkerRequestEntityTooLarge   Marker = "pkgerror.RequestEntityTooLarge"
	MarkerUnsupportedMediaType    Marker = "pkgerror.UnsupportedMediaType"
	MarkerUnprocessableEntity     Marker = "pkgerror.UnprocessableEntity"
	MarkerTooManyRequests         Marker = "pkgerror.TooManyRequests"
	MarkerServerError             Marker = "pkgerror.ServerError"
	MarkerNotImplemented          Marker = "pkgerror.NotImplemented"
	MarkerBadGateway              Marker = "pkgerror.BadGateway"
	MarkerServiceUnavailable      Marker = "pkgerror.ServiceUnavailable"
	MarkerGatewayTimeout          Marker = "pkgerror.GatewayTimeout"
	MarkerHTTPVersionNotSupported Marker = "pkgerror.HTTPVersionNotSupported"
)

// DefaultMarkers returns a fresh copy of the standard marker to HTTP status
// table. MarkerException is deliberately absent: an error that declares only
// the base capability is left to the generic handlers.
func DefaultMarkers() map[Marker]int {
	return map[Marker]int{
		MarkerBadRequest:              http.StatusBadRequest,
		MarkerUnauthorized:            http.StatusUnauthorized,
		MarkerPaymentRequired:         http.StatusPaymentRequired,
		MarkerForbidden:               http.StatusForbidden,
		MarkerNotFound:                http.StatusNotFound,
		MarkerMethodNotAllowed:        http.StatusMethodNotAllowed,
		MarkerNotAcceptable:           http.StatusNotAcceptable,
		MarkerRequestTimeout:          http.StatusRequestTimeout,
		MarkerConflict:                http.StatusConflict,
		MarkerGone:                    http.StatusGone,
		MarkerPreconditionFailed:      http.StatusPreconditionFailed,
		MarkerRequestEntityTooLarge:   http.StatusRequestEntityTooLarge,
		MarkerUnsupportedMediaType:    http.StatusUnsupportedMediaType,
		MarkerUnprocessableEntity:     http.StatusUnprocessableEntity,
		MarkerTooManyRequests:         http.StatusTooManyRequests,
		MarkerServerError:             http.StatusInternalServerError,
		MarkerNotImplemented:          http.StatusNotImplemented,
		MarkerBadGateway:              http.StatusBadGateway,
		MarkerServiceUnavailable:      http.StatusServiceUnavailable,
		MarkerGatewayTimeout:          http.StatusGatewayTimeout,
		MarkerHTTPVersionNotSupported: http.StatusHTTPVersionNotSupported,
	}
}
