package view

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fragment names patched into the page by the stream.
const (
	FragmentTable   = "table"
	FragmentSummary = "summary"
	FragmentChart   = "chart"
)

// Renderer holds the parsed page and fragment templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse view templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Templates exposes the template set for gin's HTML renderer.
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// Render executes one named template to a string.
func (r *Renderer) Render(name string, data any) (string, error) {
	var buf strings.Builder
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
