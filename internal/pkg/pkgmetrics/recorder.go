package pkgmetrics

// Recorder defines observability hooks for the dispatch error pipeline.
type Recorder interface {
	// IncHandled counts an error that was mapped to a status by its marker.
	IncHandled(marker string, status int)
	// IncUnhandled counts an error event that no strategy fully handled.
	IncUnhandled(kind string)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncHandled(string, int) {}
func (NoopRecorder) IncUnhandled(string)    {}
