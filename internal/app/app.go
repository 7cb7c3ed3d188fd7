package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goexception/internal/exception"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goexception/internal/pkg/pkglog"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goexception/internal/pkg/pkguid"
)

// Options are the bootstrap inputs resolved from the command line.
type Options struct {
	ConfigPath string
	Local      bool
	LogLevel   string
}

type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   Options

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// observability
	recorder pkgmetrics.Recorder
	metrics  http.Handler

	// dispatch errors
	events    *pkgmvc.EventManager
	renderer  pkgmvc.Renderer
	exception *exception.Strategy

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New(opts Options) *App {
	pkglog.InitLogging(slog.LevelInfo)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
	}

	app.initConfig()
	app.initLibraries()
	app.initMetrics()
	app.initViews()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
