package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded template set. Every
// page is parsed together with the shared layout and rendered through it.
type Renderer struct {
	pages map[string]*template.Template
}

func New() *Renderer {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		panic(err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		base := path.Base(name)
		if base == "layout.html" {
			continue
		}
		pages[base] = template.Must(template.ParseFS(files, "templates/layout.html", name))
	}
	return &Renderer{pages: pages}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("views: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
