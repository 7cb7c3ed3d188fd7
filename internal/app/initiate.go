package app

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goexception/internal/pkg/pkglog"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goexception/internal/pkg/pkguid"
)

//go:embed views
var viewsFS embed.FS

func (a *App) configPath() string {
	if a.opts.Local {
		return "./config/config.yaml"
	}
	if a.opts.ConfigPath != "" {
		return a.opts.ConfigPath
	}
	return "/config/config.yaml"
}

func (a *App) initConfig() {
	cfg, err := pkgconfig.NewViper(a.configPath())
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	level := cfg.GetString("log.level")
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}
	pkglog.InitLogging(pkglog.ParseLevel(level))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initMetrics() {
	if !a.config.GetBool("metrics.enabled") {
		a.recorder = pkgmetrics.NoopRecorder{}
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rec := pkgmetrics.NewPrometheusRecorder(reg)
	a.recorder = rec
	a.metrics = rec.Handler()
}

func (a *App) initViews() {
	renderer, err := pkgmvc.NewHTMLRenderer(viewsFS, "views")
	if err != nil {
		slog.Error("failed to init views", "error", err)
		os.Exit(1)
	}
	a.renderer = renderer
}

func (a *App) initHTTPServer() {
	a.events = pkgmvc.NewEventManager()
	(&pkgmvc.ExceptionStrategy{
		DisplayExceptions: a.config.GetBool("exception.display_exceptions"),
	}).Attach(a.events)
	(&pkgmvc.RouteNotFoundStrategy{}).Attach(a.events)

	a.router = pkgrouter.NewRouter(a.uuid,
		pkgrouter.WithEvents(a.events),
		pkgrouter.WithRenderer(a.renderer),
		pkgrouter.WithRecorder(a.recorder),
	)
	if a.metrics != nil {
		a.router.Handle(http.MethodGet, "/metrics", a.metrics)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
