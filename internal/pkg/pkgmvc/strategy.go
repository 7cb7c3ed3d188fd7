package pkgmvc

import "net/http"

const (
	// TemplateException is the generic error view.
	TemplateException = "error/index"
	// TemplateNotFound is the view used for routing failures.
	TemplateNotFound = "error/404"

	// GenericMessage is the user-facing message for dispatch errors.
	GenericMessage = "An error occurred during execution; please try again later."
)

// ExceptionStrategy is the fallback for dispatch errors no other listener
// recognized. It renders the generic error view with status 500 and leaves
// the error tag set.
type ExceptionStrategy struct {
	DisplayExceptions bool
	Template          string
}

// Attach registers the strategy with m at PriorityDefault.
func (s *ExceptionStrategy) Attach(m *EventManager) {
	m.Attach(s.PrepareExceptionViewModel, PriorityDefault)
}

// PrepareExceptionViewModel installs the generic error view on e.
func (s *ExceptionStrategy) PrepareExceptionViewModel(e *Event) {
	if e.Error() != ErrorException {
		return
	}
	if _, ok := e.Result().(*Response); ok {
		return
	}

	tpl := s.Template
	if tpl == "" {
		tpl = TemplateException
	}

	model := NewViewModel(map[string]any{
		"message":            GenericMessage,
		"exception":          e.Exception(),
		"display_exceptions": s.DisplayExceptions,
	})
	model.SetTemplate(tpl)
	e.SetResult(model)

	ensureResponse(e).SetStatusCode(http.StatusInternalServerError)
}

// RouteNotFoundStrategy renders routing failures: 404 when no route matched
// and 405 when only the method was wrong.
type RouteNotFoundStrategy struct {
	Template string
}

// Attach registers the strategy with m at PriorityDefault.
func (s *RouteNotFoundStrategy) Attach(m *EventManager) {
	m.Attach(s.PrepareNotFoundViewModel, PriorityDefault)
}

// PrepareNotFoundViewModel installs the not found view on e.
func (s *RouteNotFoundStrategy) PrepareNotFoundViewModel(e *Event) {
	var status int
	switch e.Error() {
	case ErrorRouterNoMatch:
		status = http.StatusNotFound
	case ErrorMethodNotAllowed:
		status = http.StatusMethodNotAllowed
	default:
		return
	}
	if _, ok := e.Result().(*Response); ok {
		return
	}

	tpl := s.Template
	if tpl == "" {
		tpl = TemplateNotFound
	}

	model := NewViewModel(map[string]any{
		"message": http.StatusText(status),
		"reason":  string(e.Error()),
	})
	model.SetTemplate(tpl)
	e.SetResult(model)

	ensureResponse(e).SetStatusCode(status)
	e.SetError("")
}

func ensureResponse(e *Event) *Response {
	resp := e.Response()
	if resp == nil {
		resp = NewResponse()
		e.SetResponse(resp)
	}
	return resp
}
