package exception

import (
	"errors"
	"fmt"
	"maps"

	"github.com/shandysiswandi/goexception/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
)

var (
	// ErrEmptyMarker is returned when a marker identifier is empty.
	ErrEmptyMarker = errors.New("exception: empty marker")
	// ErrInvalidStatus is returned when a mapped status is outside 100..599.
	ErrInvalidStatus = errors.New("exception: invalid status code")
)

// Config is the immutable marker table plus display settings. It is safe for
// concurrent reads.
type Config struct {
	defaultMarker     pkgerror.Marker
	markers           map[pkgerror.Marker]int
	displayExceptions bool
}

// Option configures a Config during construction.
type Option func(*Config)

// WithDefaultMarker records the fallback marker. It is kept for inspection
// and is not consulted by Classify.
func WithDefaultMarker(m pkgerror.Marker) Option {
	return func(c *Config) {
		c.defaultMarker = m
	}
}

// WithExceptionMarkers installs the marker to status table, replacing any
// earlier table. The map is copied.
func WithExceptionMarkers(markers map[pkgerror.Marker]int) Option {
	return func(c *Config) {
		c.markers = maps.Clone(markers)
	}
}

// WithDisplayExceptions controls whether views may show the original error.
func WithDisplayExceptions(display bool) Option {
	return func(c *Config) {
		c.displayExceptions = display
	}
}

// NewConfig builds a Config. Without WithExceptionMarkers the table is
// pkgerror.DefaultMarkers.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{defaultMarker: pkgerror.MarkerException}
	for _, opt := range opts {
		opt(c)
	}
	if c.markers == nil {
		c.markers = pkgerror.DefaultMarkers()
	}

	for marker, status := range c.markers {
		if marker == "" {
			return nil, ErrEmptyMarker
		}
		if status < 100 || status > 599 {
			return nil, fmt.Errorf("%w: %s => %d", ErrInvalidStatus, marker, status)
		}
	}

	return c, nil
}

type markerEntry struct {
	Marker string `mapstructure:"marker"`
	Status int    `mapstructure:"status"`
}

// NewConfigFromSource reads the "exception" section of cfg:
//
//	exception:
//	  default_marker: pkgerror.Exception
//	  display_exceptions: false
//	  markers:
//	    - marker: pkgerror.NotFound
//	      status: 404
//
// An empty markers list keeps the default table.
func NewConfigFromSource(cfg pkgconfig.Config) (*Config, error) {
	var entries []markerEntry
	if err := cfg.Unmarshal("exception.markers", &entries); err != nil {
		return nil, err
	}

	opts := []Option{WithDisplayExceptions(cfg.GetBool("exception.display_exceptions"))}
	if m := cfg.GetString("exception.default_marker"); m != "" {
		opts = append(opts, WithDefaultMarker(pkgerror.Marker(m)))
	}

	if len(entries) > 0 {
		table := make(map[pkgerror.Marker]int, len(entries))
		for _, e := range entries {
			table[pkgerror.Marker(e.Marker)] = e.Status
		}
		opts = append(opts, WithExceptionMarkers(table))
	}

	return NewConfig(opts...)
}

// DefaultMarker returns the configured fallback marker.
func (c *Config) DefaultMarker() pkgerror.Marker {
	return c.defaultMarker
}

// DisplayExceptions reports whether the original error is exposed to views.
func (c *Config) DisplayExceptions() bool {
	return c.displayExceptions
}

// Status returns the status mapped to m.
func (c *Config) Status(m pkgerror.Marker) (int, bool) {
	status, ok := c.markers[m]
	return status, ok
}

// Markers returns a copy of the table.
func (c *Config) Markers() map[pkgerror.Marker]int {
	return maps.Clone(c.markers)
}

// Classification is the outcome of a successful classification.
type Classification struct {
	Marker     pkgerror.Marker
	StatusCode int
	Template   string
}

// Classify returns the first marker declared by exc that is in the table.
// The returned status is always the table entry for that marker.
func (c *Config) Classify(exc pkgerror.Exception) (Classification, bool) {
	for _, m := range exc.Markers() {
		if status, ok := c.markers[m]; ok {
			return Classification{
				Marker:     m,
				StatusCode: status,
				Template:   TemplateName(string(m)),
			}, true
		}
	}
	return Classification{}, false
}
