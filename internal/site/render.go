package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/eugenenazirov/agency-site/internal/seo"
)

// Page template names.
const (
	PageHome     = "home"
	PageServices = "services"
	PageService  = "service"
	PageNotFound = "not-found"
	PageRedirect = "redirect"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{PageHome, PageServices, PageService, PageNotFound, PageRedirect}

var funcs = template.FuncMap{
	"price": seo.FormatPrice,
	"style": StyleFor,
	"join":  strings.Join,
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page template together with the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render writes page using the named template.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if err := tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}
	return nil
}
