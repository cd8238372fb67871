// Package http serves the validation page
package http

import (
	"bytes"
	"embed"
	"html/template"
	stdhttp "net/http"
	"strings"

	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/platform/logger"
	"mailvet/internal/services/web/presenter"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Register mounts the page routes
func Register(r httpkit.Router, v presenter.Validator) {
	h := &handlers{v: v}
	r.Get("/", h.form)
	r.Post("/", h.submit)
}

type handlers struct{ v presenter.Validator }

func (h *handlers) form(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	render(w, r, stdhttp.StatusOK, presenter.Render(presenter.Form{}))
}

func (h *handlers) submit(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	r.Body = stdhttp.MaxBytesReader(w, r.Body, 16<<10)
	if err := r.ParseForm(); err != nil {
		render(w, r, stdhttp.StatusBadRequest, presenter.Page{Error: presenter.DefaultErrorText})
		return
	}
	f := presenter.Form{Email: strings.TrimSpace(r.PostForm.Get("email"))}
	f.Submit(r.Context(), h.v)
	render(w, r, stdhttp.StatusOK, presenter.Render(f))
}

func render(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, p presenter.Page) {
	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("render page")
		stdhttp.Error(w, "render failed", stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
