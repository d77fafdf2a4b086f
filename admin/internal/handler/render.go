package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/listing"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/table"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"emptyText":   func() string { return listing.EmptyText },
	"loadingText": func() string { return listing.LoadingText },
	"placeholder": func() string { return listing.FilterPlaceholder },
	"ariaChecked": func(s table.CheckState) string {
		switch s {
		case table.Checked:
			return "true"
		case table.Indeterminate:
			return "mixed"
		default:
			return "false"
		}
	},
	"sortArrow": func(d table.SortDirection) string {
		switch d {
		case table.SortAsc:
			return "▲"
		case table.SortDesc:
			return "▼"
		default:
			return "⇅"
		}
	},
}

// TemplateRenderer implements echo.Renderer over the embedded templates.
type TemplateRenderer struct {
	templates *template.Template
}

func NewRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
