package exception

import (
	"fmt"

	"github.com/shandysiswandi/goexception/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
)

type Dependency struct {
	Config   pkgconfig.Config
	Events   *pkgmvc.EventManager
	Recorder pkgmetrics.Recorder
}

// New builds the strategy from configuration and attaches it to the event
// manager.
func New(dep Dependency) (*Strategy, error) {
	cfg, err := NewConfigFromSource(dep.Config)
	if err != nil {
		return nil, fmt.Errorf("exception config: %w", err)
	}

	strategy := NewStrategy(cfg, dep.Recorder)
	strategy.Attach(dep.Events)

	return strategy, nil
}
