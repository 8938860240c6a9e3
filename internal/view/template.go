package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{
	PageHome, PageSearch, PageAuth, PageListings, PageListing, PageOwners,
	PageProfile, PageWebsites, PageMaterials, PageMessages, PageSettings,
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

// TemplateRenderer html/template поверх встроенных шаблонов: layout + страница.
type TemplateRenderer struct {
	set map[string]*template.Template
}

var _ Renderer = (*TemplateRenderer)(nil)

func NewTemplateRenderer() (*TemplateRenderer, error) {
	set := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		set[name] = t
	}
	return &TemplateRenderer{set: set}, nil
}

// Render сначала пишет в буфер, чтобы при ошибке не отдать полстраницы.
func (r *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.set[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
