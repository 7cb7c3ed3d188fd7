package exception

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgmvc"
)

func TestNewAttachesStrategy(t *testing.T) {
	events := pkgmvc.NewEventManager()
	s, err := New(Dependency{
		Config: fakeSource{markers: []markerEntry{{Marker: string(markerA), Status: http.StatusNotFound}}},
		Events: events,
	})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 1, events.Len())

	e := dispatchEvent(&markedError{markers: []pkgerror.Marker{markerA}})
	events.Trigger(e)
	assert.Equal(t, http.StatusNotFound, e.Response().StatusCode())
}

func TestNewReturnsConfigErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(Dependency{Config: fakeSource{err: boom}, Events: pkgmvc.NewEventManager()})
	assert.ErrorIs(t, err, boom)
}
