package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
	"github.com/shandysiswandi/goexception/internal/pkg/pkguid"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr       *httprouter.Router
	events   *pkgmvc.EventManager
	renderer pkgmvc.Renderer
	recorder pkgmetrics.Recorder
	encoder  func(ctx context.Context, w http.ResponseWriter, resp any)
	mws      []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uuid pkguid.StringID, opts ...Option) *Router {
	ro := &Router{
		encoder:  okCodec,
		recorder: pkgmetrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(ro)
	}
	if ro.events == nil {
		ro.events = defaultEvents()
	}

	ro.hr = &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ro.DispatchError(w, r, pkgmvc.ErrorRouterNoMatch, nil)
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ro.DispatchError(w, r, pkgmvc.ErrorMethodNotAllowed, nil)
		}),
	}

	ro.mws = []Middleware{
		ro.middlewareRecoverer,
		middlewareCorrelationID(uuid),
		middlewareLogging,
	}

	ro.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "hi from goexception"}, http.StatusOK)
	}))

	ro.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "server is running well"}, http.StatusOK)
	}))

	return ro
}

// Events returns the dispatch error pipeline so strategies can attach to it.
func (r *Router) Events() *pkgmvc.EventManager {
	return r.events
}

// Use appends middleware to the existing middleware stack.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, append(r.mws, mws...)...))
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.DispatchError(w, re, pkgmvc.ErrorException, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), append(r.mws, mws...)...))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// DispatchError runs a dispatch error event through the pipeline and writes
// the outcome.
func (r *Router) DispatchError(w http.ResponseWriter, req *http.Request, kind pkgmvc.ErrorKind, err error) {
	ev := pkgmvc.NewEvent(req)
	ev.SetError(kind)
	ev.SetException(err)

	r.events.Trigger(ev)
	r.writeEvent(w, req, ev)
}

func (r *Router) writeEvent(w http.ResponseWriter, req *http.Request, ev *pkgmvc.Event) {
	if kind := ev.Error(); kind != "" {
		r.recorder.IncUnhandled(string(kind))
		slog.WarnContext(req.Context(), "dispatch error left to fallback", "kind", kind, "error", ev.Exception())
	}

	// A finished response carries its own headers and status.
	if result, ok := ev.Result().(*pkgmvc.Response); ok {
		result.Write(w)
		return
	}

	status := http.StatusInternalServerError
	if resp := ev.Response(); resp != nil {
		status = resp.StatusCode()
		for k, vv := range resp.Header() {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}

	switch result := ev.Result().(type) {
	case *pkgmvc.ViewModel:
		if r.renderer != nil {
			err := r.renderer.Render(w, req, status, result)
			if err == nil {
				return
			}
			slog.ErrorContext(req.Context(), "failed to render error view", "template", result.Template(), "error", err)
		}

		msg, _ := result.Variables()["message"].(string)
		writeJSON(w, errorResponse{Message: msg}, status)
		return
	}

	writeJSON(w, errorResponse{Message: "Internal server error"}, status)
}

func okCodec(_ context.Context, w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	msg := "request has been successfully"
	if m, ok := resp.(interface {
		Message() string
	}); ok {
		msg = m.Message()
	}

	writeJSON(w, successReponse{
		Message: msg,
		Data:    resp,
	}, code)
}

type errorResponse struct {
	Message string `json:"message"`
}

type successReponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
