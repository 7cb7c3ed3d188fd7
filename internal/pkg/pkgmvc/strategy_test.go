package pkgmvc

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptionStrategyRendersGenericView(t *testing.T) {
	s := &ExceptionStrategy{DisplayExceptions: true}
	cause := errors.New("boom")

	e := NewEvent(nil)
	e.SetError(ErrorException)
	e.SetException(cause)
	s.PrepareExceptionViewModel(e)

	vm, ok := e.Result().(*ViewModel)
	require.True(t, ok)
	assert.Equal(t, TemplateException, vm.Template())
	assert.Equal(t, GenericMessage, vm.Variables()["message"])
	assert.Equal(t, cause, vm.Variables()["exception"])
	assert.Equal(t, true, vm.Variables()["display_exceptions"])
	require.NotNil(t, e.Response())
	assert.Equal(t, http.StatusInternalServerError, e.Response().StatusCode())
	assert.Equal(t, ErrorException, e.Error(), "generic strategy keeps the tag")
}

func TestExceptionStrategyIgnoresOtherKindsAndFinishedResponses(t *testing.T) {
	s := &ExceptionStrategy{}

	e := NewEvent(nil)
	e.SetError(ErrorRouterNoMatch)
	s.PrepareExceptionViewModel(e)
	assert.Nil(t, e.Result())
	assert.Nil(t, e.Response())

	done := NewResponse()
	e = NewEvent(nil)
	e.SetError(ErrorException)
	e.SetResult(done)
	s.PrepareExceptionViewModel(e)
	assert.Same(t, done, e.Result())
	assert.Nil(t, e.Response())
}

func TestRouteNotFoundStrategy(t *testing.T) {
	tests := []struct {
		name   string
		kind   ErrorKind
		status int
	}{
		{name: "no route", kind: ErrorRouterNoMatch, status: http.StatusNotFound},
		{name: "wrong method", kind: ErrorMethodNotAllowed, status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &RouteNotFoundStrategy{}
			e := NewEvent(nil)
			e.SetError(tt.kind)
			s.PrepareNotFoundViewModel(e)

			vm, ok := e.Result().(*ViewModel)
			require.True(t, ok)
			assert.Equal(t, TemplateNotFound, vm.Template())
			assert.Equal(t, string(tt.kind), vm.Variables()["reason"])
			assert.Equal(t, tt.status, e.Response().StatusCode())
			assert.Empty(t, e.Error())
		})
	}
}

func TestRouteNotFoundStrategyIgnoresDispatchErrors(t *testing.T) {
	s := &RouteNotFoundStrategy{}
	e := NewEvent(nil)
	e.SetError(ErrorException)
	s.PrepareNotFoundViewModel(e)

	assert.Nil(t, e.Result())
	assert.Equal(t, ErrorException, e.Error())
}
