package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/goexception/internal/catalog"
	"github.com/shandysiswandi/goexception/internal/exception"
)

func (a *App) initModules() {
	strategy, err := exception.New(exception.Dependency{
		Config:   a.config,
		Events:   a.events,
		Recorder: a.recorder,
	})
	if err != nil {
		slog.Error("failed to init module exception", "error", err)
		os.Exit(1)
	}
	a.exception = strategy

	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			Router: a.router,
			ID:     a.snowflake,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}
}
