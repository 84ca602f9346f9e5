package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	ginrender "github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/base.layout.html"

// Renderer renders each page inside the base layout.
// It implements gin's render.HTMLRender.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded pages.
func NewRenderer(f *Formatter) (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.page.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		t, err := template.New("").Funcs(f.FuncMap()).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".page.html")
		r.pages[name] = t
	}
	return r, nil
}

// Instance returns the render for the named page.
func (r *Renderer) Instance(name string, data any) ginrender.Render {
	t, ok := r.pages[name]
	if !ok {
		t = template.Must(template.New("missing").Parse(`page not found`))
		return ginrender.HTML{Template: t, Data: data}
	}
	return ginrender.HTML{Template: t, Name: "base", Data: data}
}

// Pages lists the parsed page names.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for n := range r.pages {
		names = append(names, n)
	}
	return names
}
