package pkgrouter

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
)

// middlewareRecoverer turns a handler panic into a server error dispatched
// through the error pipeline.
//
//nolint:contextcheck // request context is used for logging only
func (r *Router) middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(req.Context(), "panic on the server",
					"because", rvr,
					"stack", internalFrames(string(debug.Stack())),
				)

				//nolint:err113 // panic value is dynamic
				r.DispatchError(w, req, pkgmvc.ErrorException, pkgerror.NewServer(fmt.Errorf("panic: %v", rvr)))
			}
		}()

		next.ServeHTTP(w, req)
	})
}

// internalFrames keeps the "internal/...go:line" locations of a stack dump.
func internalFrames(stack string) []string {
	var frames []string
	for _, line := range strings.Split(stack, "\n") {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		short := line[idx+1:]
		if end := strings.IndexByte(short, ' '); end != -1 {
			short = short[:end]
		}
		frames = append(frames, short)
	}
	return frames
}
