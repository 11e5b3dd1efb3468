package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"bookit-web/internal/parse"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates loads every page and partial template.
func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func formatAmenity(token string) string {
	return parse.FormatAmenityName(token)
}

func formatAmenityList(tokens []string) string {
	if len(tokens) == 0 {
		return "None"
	}
	return strings.Join(parse.FormatAmenityNames(tokens), ", ")
}
