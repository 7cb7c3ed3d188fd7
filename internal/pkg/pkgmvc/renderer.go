package pkgmvc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

// ErrTemplateNotFound is returned when neither the requested template nor the
// fallback template exists.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer writes a view model to the client.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, vm *ViewModel) error
}

// HTMLRenderer renders view models with html/template, or as JSON when the
// client prefers it.
type HTMLRenderer struct {
	tpl      *template.Template
	fallback string
}

// NewHTMLRenderer parses every *.html file below root in fsys. Templates are
// named by their path relative to root without the extension, so
// "views/error/not-found.html" becomes "error/not-found".
func NewHTMLRenderer(fsys fs.FS, root string) (*HTMLRenderer, error) {
	set := template.New("")

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(p, root), "/"), ".html")
		if _, err := set.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &HTMLRenderer{tpl: set, fallback: TemplateException}, nil
}

// Has reports whether a template with the given name was loaded.
func (h *HTMLRenderer) Has(name string) bool {
	return h.tpl.Lookup(name) != nil
}

// Render implements Renderer.
func (h *HTMLRenderer) Render(w http.ResponseWriter, r *http.Request, status int, vm *ViewModel) error {
	if wantsJSON(r) {
		return writeJSONView(w, status, vm)
	}

	name := vm.Template()
	if name == "" {
		name = h.fallback
	}

	t := h.tpl.Lookup(name)
	if t == nil {
		t = h.tpl.Lookup(h.fallback)
	}
	if t == nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, vm.Variables()); err != nil {
		return fmt.Errorf("execute template %s: %w", t.Name(), err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

type jsonView struct {
	Message  string `json:"message"`
	Template string `json:"template,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
}

func writeJSONView(w http.ResponseWriter, status int, vm *ViewModel) error {
	view := jsonView{Template: vm.Template()}
	if msg, ok := vm.Variable("message"); ok {
		view.Message, _ = msg.(string)
	}
	if reason, ok := vm.Variable("reason"); ok {
		view.Reason, _ = reason.(string)
	}
	if display, _ := vm.Variable("display_exceptions"); display == true {
		if exc, ok := vm.Variable("exception"); ok {
			if err, ok := exc.(error); ok && err != nil {
				view.Error = err.Error()
			}
		}
	}

	b, err := json.Marshal(view)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(b)
	return err
}

// wantsJSON reports whether the first recognized media type in the Accept
// header is JSON.
func wantsJSON(r *http.Request) bool {
	if r == nil {
		return false
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch {
		case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
			return true
		case mediaType == "text/html", mediaType == "application/xhtml+xml":
			return false
		}
	}
	return false
}
