// Package web holds the panel's server-rendered views and static assets,
// embedded into the binary so the deployable artifact stays a single file.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded static asset tree, rooted at its contents.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcMap = template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("Jan 2, 2006 15:04")
	},
	"since": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		d := time.Since(t).Round(time.Minute)
		if d < time.Minute {
			return "just now"
		}
		return fmt.Sprintf("%s ago", d)
	},
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
}

// Renderer adapts the embedded template set to echo.Renderer.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template once, at startup.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
