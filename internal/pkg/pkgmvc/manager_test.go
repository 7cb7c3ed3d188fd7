package pkgmvc

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventManagerRunsByPriorityThenAttachOrder(t *testing.T) {
	m := NewEventManager()
	var order []string

	m.Attach(func(*Event) { order = append(order, "low") }, PriorityDefault)
	m.Attach(func(*Event) { order = append(order, "high-1") }, 100)
	m.Attach(func(*Event) { order = append(order, "high-2") }, 100)
	m.Attach(func(*Event) { order = append(order, "mid") }, 50)

	m.Trigger(NewEvent(httptest.NewRequest("GET", "/", nil)))

	assert.Equal(t, []string{"high-1", "high-2", "mid", "low"}, order)
	assert.Equal(t, 4, m.Len())
}

func TestEventManagerListenersSeeEarlierMutations(t *testing.T) {
	m := NewEventManager()
	var seen ErrorKind = "unset"

	m.Attach(func(e *Event) { e.SetError("") }, 10)
	m.Attach(func(e *Event) { seen = e.Error() }, 1)

	e := NewEvent(nil)
	e.SetError(ErrorException)
	m.Trigger(e)

	require.Equal(t, ErrorKind(""), seen)
}

func TestNewResponseDefaults(t *testing.T) {
	resp := NewResponse()
	assert.Equal(t, 200, resp.StatusCode())
	assert.NotNil(t, resp.Header())

	resp.Header().Set("X-Test", "1")
	resp.SetStatusCode(418)

	rec := httptest.NewRecorder()
	resp.Write(rec)
	assert.Equal(t, 418, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Test"))
}

func TestNewViewModelCopiesVariables(t *testing.T) {
	vars := map[string]any{"message": "hi"}
	vm := NewViewModel(vars)
	vars["message"] = "changed"

	got, ok := vm.Variable("message")
	require.True(t, ok)
	assert.Equal(t, "hi", got)

	vm.SetTemplate("error/x")
	assert.Equal(t, "error/x", vm.Template())
}
