package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer turns a named template and a view-model mapping into a response
// body. Handlers depend on this interface only, so tests can substitute a
// recording fake.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data map[string]any)
}

// HTMLRenderer renders the embedded html/template set.
type HTMLRenderer struct {
	templates *template.Template
	log       zerolog.Logger
}

func NewHTMLRenderer(log zerolog.Logger) (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{templates: tmpl, log: log}, nil
}

// Render executes the template into a buffer first so a template failure
// never leaks a half-written page.
func (r *HTMLRenderer) Render(w http.ResponseWriter, status int, name string, data map[string]any) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error().Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.log.Error().Err(err).Str("template", name).Msg("failed to write response")
	}
}
