package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"
)

func TestMarkersAlwaysEndWithException(t *testing.T) {
	err := New("gone", MarkerGone, MarkerNotFound).(*Error)
	want := []Marker{MarkerGone, MarkerNotFound, MarkerException}
	if got := err.Markers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected markers: %#v", got)
	}

	dup := New("base", MarkerException, MarkerForbidden).(*Error)
	want = []Marker{MarkerForbidden, MarkerException}
	if got := dup.Markers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected base marker once at the end, got %#v", got)
	}
}

func TestMarkersInheritWrappedException(t *testing.T) {
	inner := NewNotFound("missing")

	plain := Wrap(inner, "load product").(*Error)
	want := []Marker{MarkerNotFound, MarkerException}
	if got := plain.Markers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected markers: %#v", got)
	}

	// The wrapped exception may sit behind a foreign wrapper.
	outer := Wrap(fmt.Errorf("repo: %w", inner), "load product", MarkerGone, MarkerNotFound).(*Error)
	want = []Marker{MarkerGone, MarkerNotFound, MarkerException}
	if got := outer.Markers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected own markers first without duplicates, got %#v", got)
	}

	if got := Wrap(errors.New("io"), "read").(*Error).Markers(); !reflect.DeepEqual(got, []Marker{MarkerException}) {
		t.Fatalf("expected only the base marker, got %#v", got)
	}
}

func TestErrorHelpers(t *testing.T) {
	root := errors.New("boom")
	err := NewServer(root)
	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped error")
	}
	if got := gerr.Msg(); got != "Internal server error" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := gerr.Error(); got != "Internal server error: boom" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := gerr.Markers()[0]; got != MarkerServerError {
		t.Fatalf("unexpected marker: %v", got)
	}
}

func TestNotFoundWrapsSentinel(t *testing.T) {
	err := NewNotFound("product not found")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain")
	}
	if got := err.(*Error).Msg(); got != "product not found" {
		t.Fatalf("unexpected msg: %q", got)
	}
}

func TestAsFindsWrappedException(t *testing.T) {
	inner := NewForbidden("locked")
	wrapped := fmt.Errorf("delete product: %w", inner)

	exc, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected exception in chain")
	}
	if exc != inner {
		t.Fatalf("expected the inner error, got %v", exc)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Fatalf("plain errors must not be classifiable")
	}
	if _, ok := As(nil); ok {
		t.Fatalf("nil must not be classifiable")
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	if got := New("").Error(); got != "Unknown error" {
		t.Fatalf("unexpected fallback: %q", got)
	}
	if got := Wrap(errors.New("io"), "").Error(); got != "io" {
		t.Fatalf("unexpected wrapped fallback: %q", got)
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewConflict("duplicate").(*Error)
	str := err.String()
	if !strings.Contains(str, "pkgerror.Conflict") {
		t.Fatalf("expected marker in string: %q", str)
	}
	if !strings.Contains(str, "duplicate") {
		t.Fatalf("expected message in string: %q", str)
	}
}

func TestDefaultMarkersIsACopy(t *testing.T) {
	m := DefaultMarkers()
	if m[MarkerNotFound] != http.StatusNotFound {
		t.Fatalf("unexpected not found status: %d", m[MarkerNotFound])
	}
	if _, ok := m[MarkerException]; ok {
		t.Fatalf("base marker must not be mapped by default")
	}

	m[MarkerNotFound] = http.StatusTeapot
	if got := DefaultMarkers()[MarkerNotFound]; got != http.StatusNotFound {
		t.Fatalf("expected a fresh table, got %d", got)
	}
}

func TestDefaultMarkersStatusRange(t *testing.T) {
	for marker, status := range DefaultMarkers() {
		if status < 100 || status > 599 {
			t.Fatalf("marker %s has out of range status %d", marker, status)
		}
	}
}
