package server

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/jrsteele09/codelearn-landing/catalog"
)

//go:embed templates/*.html
var templateFiles embed.FS

const contentTypeHTML = "text/html; charset=utf-8"

var templateFuncs = template.FuncMap{
	"difficultyColor": catalog.DifficultyColor,
	"difficultyLabel": catalog.DifficultyLabel,
}

// ParseTemplate parses one page from the embedded templates directory.
func ParseTemplate(name string) (*template.Template, error) {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, err
	}
	return template.New(name).Funcs(templateFuncs).ParseFS(subFS, name)
}

// mustParseTemplate is used while building handlers; a broken embedded
// template is a programming error.
func mustParseTemplate(name string) *template.Template {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse " + name + " template: " + err.Error())
	}
	return tmpl
}
