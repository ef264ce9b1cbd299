package emit

import (
	"io"
	"text/template"

	"github.com/foomo/htmlgen/vo"
)

type FileOptions struct {
	// Package name of the generated file
	Package string
	// Source the elements were scraped from
	Source string
}

type headerData struct {
	FileOptions
	Owned   bool
	Imports []string
}

var headerTemplate = template.Must(template.New("header").Parse(`// Code generated by htmlgen from {{.Source}}; DO NOT EDIT.

// Package {{.Package}} contains the HTML elements and their attributes.
// It is generated from the MDN HTML element reference <{{.Source}}>.
{{- if .Owned}}
//
// The <Element>Owned types are the same as the <Element> types, but their
// text and map fields own their storage. The <Element> types hold byte slices
// that reference a buffer owned by the caller.
{{- end}}
package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{end}}
`))

var markerTemplate = template.Must(template.New("marker").Parse(`
{{- if .Doc}}{{.Doc}}
{{end -}}
{{- if .Deprecation}}{{.Deprecation}}
{{end -}}
type {{.Type}} struct{}

`))

func imports(globals vo.AttributeSet) []string {
	for _, attr := range globals.Specs() {
		if attr.Type == vo.SemanticTypeMapping && Owned.Store(attr, "val") != "val" {
			return []string{"maps"}
		}
	}
	return nil
}

// File writes the complete source: for every element its borrowed then its
// owned declaration, the Unknown declarations and finally both unions.
func File(w io.Writer, opts FileOptions, model *vo.Model) error {
	errHeader := headerTemplate.Execute(w, headerData{
		FileOptions: opts,
		Owned:       true,
		Imports:     imports(model.Globals),
	})
	if errHeader != nil {
		return errHeader
	}
	elements := make([]vo.ElementSpec, 0, len(model.Elements)+1)
	elements = append(elements, model.Elements...)
	elements = append(elements, UnknownElement(model.Globals))
	for _, el := range elements {
		for _, s := range Storages {
			if errDeclaration := Declaration(w, el, s); errDeclaration != nil {
				return errDeclaration
			}
		}
	}
	for _, s := range Storages {
		if errUnion := Union(w, elements, model.Globals, s); errUnion != nil {
			return errUnion
		}
	}
	return nil
}

// MarkerFile writes one empty documented struct per element, without
// attributes and without a union.
func MarkerFile(w io.Writer, opts FileOptions, model *vo.Model) error {
	errHeader := headerTemplate.Execute(w, headerData{FileOptions: opts})
	if errHeader != nil {
		return errHeader
	}
	for _, el := range model.Elements {
		data := declarationData{
			Doc:  el.Documentation,
			Type: el.Name,
		}
		if el.Deprecated {
			data.Deprecation = deprecation(el.TagName)
		}
		if errMarker := markerTemplate.Execute(w, data); errMarker != nil {
			return errMarker
		}
	}
	return nil
}
