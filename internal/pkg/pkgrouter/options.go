package pkgrouter

import (
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
)

// Option customizes a Router.
type Option func(*Router)

// WithEvents sets the dispatch error pipeline. Without it the router uses a
// pipeline holding only the generic pkgmvc strategies.
func WithEvents(m *pkgmvc.EventManager) Option {
	return func(r *Router) {
		r.events = m
	}
}

// WithRenderer sets the renderer used for view model results. Without it
// view models are written as JSON.
func WithRenderer(rd pkgmvc.Renderer) Option {
	return func(r *Router) {
		r.renderer = rd
	}
}

// WithRecorder sets the metrics recorder for unhandled dispatch errors.
func WithRecorder(rec pkgmetrics.Recorder) Option {
	return func(r *Router) {
		r.recorder = rec
	}
}

func defaultEvents() *pkgmvc.EventManager {
	m := pkgmvc.NewEventManager()
	(&pkgmvc.ExceptionStrategy{}).Attach(m)
	(&pkgmvc.RouteNotFoundStrategy{}).Attach(m)
	return m
}
