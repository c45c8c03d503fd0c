package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed html/*.html
var templateFS embed.FS

// pages maps each renderable page to its template file.
var pages = []string{
	"home.html",
	"symbol.html",
	"search.html",
	"collections.html",
	"collection.html",
	"blocks.html",
	"block.html",
	"blog.html",
	"error.html",
}

// Renderer renders named pages, each composed with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates. It fails if any page is missing
// or malformed, so callers can treat a built Renderer as complete.
func New() (*Renderer, error) {
	layout, err := template.ParseFS(templateFS, "html/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, err)
		}
		tpl, err := clone.ParseFS(templateFS, "html/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		parsed[page] = tpl
	}
	return &Renderer{templates: parsed}, nil
}

// Render writes the named page to w with the given data.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}
