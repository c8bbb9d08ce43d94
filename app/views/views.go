// Package views renders the embedded HTML templates. Every page template
// is a standalone file executed by name; layout.tmpl contributes the
// shared header and footer partials.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

//go:embed templates/*.tmpl
var files embed.FS

var templates = template.Must(template.ParseFS(files, "templates/*.tmpl"))

// Render writes the named template with data and the given status code.
// The template executes into a buffer first, so a mid-render failure
// becomes a clean 500 instead of a 200 with truncated HTML.
func Render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("views: render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// ErrorData feeds the error page template.
type ErrorData struct {
	Title   string
	Status  int
	Message string
}

// Error renders the error page with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	Render(w, status, "error.tmpl", ErrorData{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}

// NotFound renders the 404 page.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
