package exception

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
)

// Priority runs the strategy ahead of the generic pkgmvc strategies.
const Priority = 100

// Strategy converts recognized dispatch errors into status coded error views.
type Strategy struct {
	cfg      *Config
	recorder pkgmetrics.Recorder
}

// NewStrategy returns a strategy backed by cfg. A nil recorder disables metrics.
func NewStrategy(cfg *Config, recorder pkgmetrics.Recorder) *Strategy {
	if recorder == nil {
		recorder = pkgmetrics.NoopRecorder{}
	}
	return &Strategy{cfg: cfg, recorder: recorder}
}

// Config returns the strategy configuration.
func (s *Strategy) Config() *Config {
	return s.cfg
}

// Attach registers HandleDispatchError with m at Priority.
func (s *Strategy) Attach(m *pkgmvc.EventManager) {
	m.Attach(s.HandleDispatchError, Priority)
}

// HandleDispatchError maps the error attached to e when it is a dispatch
// error declaring a configured marker. Otherwise e is not modified.
func (s *Strategy) HandleDispatchError(e *pkgmvc.Event) {
	if e.Error() == "" {
		return
	}

	// Another listener already produced a finished response.
	if _, ok := e.Result().(*pkgmvc.Response); ok {
		return
	}

	if e.Error() != pkgmvc.ErrorException {
		return
	}

	exc, ok := pkgerror.As(e.Exception())
	if !ok {
		return
	}

	c, ok := s.cfg.Classify(exc)
	if !ok {
		return
	}

	model := pkgmvc.NewViewModel(map[string]any{
		"message":            pkgmvc.GenericMessage,
		"exception":          e.Exception(),
		"display_exceptions": s.cfg.DisplayExceptions(),
	})
	model.SetTemplate(c.Template)
	e.SetResult(model)

	response := e.Response()
	if response == nil {
		response = pkgmvc.NewResponse()
		e.SetResponse(response)
	}
	response.SetStatusCode(c.StatusCode)

	// Stop the remaining listeners from handling the same error.
	e.SetError("")

	s.recorder.IncHandled(c.Marker.String(), c.StatusCode)
	slog.DebugContext(eventContext(e), "dispatch error mapped",
		"marker", c.Marker.String(),
		"status", c.StatusCode,
		"template", c.Template,
		"error", e.Exception(),
	)
}

func eventContext(e *pkgmvc.Event) context.Context {
	if r := e.Request(); r != nil {
		return r.Context()
	}
	return context.Background()
}
