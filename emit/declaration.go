package emit

import (
	"io"
	"strings"
	"text/template"

	"github.com/foomo/htmlgen/naming"
	"github.com/foomo/htmlgen/vo"
)

type fieldData struct {
	Doc   string
	Name  string
	Type  string
	Label string
}

type declarationData struct {
	Doc         string
	Deprecation string
	Type        string
	Tag         string
	Fields      []fieldData
}

var declarationTemplate = template.Must(template.New("declaration").Parse(`
{{- if .Doc}}{{.Doc}}
{{end -}}
{{- if .Deprecation}}{{.Deprecation}}
{{end -}}
type {{.Type}} struct {
{{- range .Fields}}
{{- if .Doc}}
{{.Doc}}
{{- end}}
	{{.Name}} {{.Type}} ` + "`" + `html:"{{.Label}}"` + "`" + `
{{- end}}
}

// {{.Type}}Tag is the tag name of {{.Type}}.
{{- if .Deprecation}}
{{.Deprecation}}
{{- end}}
const {{.Type}}Tag = "{{.Tag}}"

// Tag returns the tag name of the element, the struct name in kebab-case.
{{- if .Deprecation}}
{{.Deprecation}}
{{- end}}
func ({{.Type}}) Tag() string {
	return {{.Type}}Tag
}

`))

// structTagLabel keeps a label usable inside a struct tag
func structTagLabel(label string) string {
	if label == "" {
		return "-"
	}
	return strings.NewReplacer("\"", "", "`", "", "\\", "").Replace(label)
}

func newDeclarationData(el vo.ElementSpec, s Storage) declarationData {
	data := declarationData{
		Doc:  el.Documentation,
		Type: s.TypeName(el.Name),
		Tag:  el.TagName,
	}
	if el.Deprecated {
		data.Deprecation = deprecation(el.TagName)
	}
	for _, attr := range el.Attributes.Specs() {
		data.Fields = append(data.Fields, fieldData{
			Doc:   attr.Description,
			Name:  naming.GoName(attr.Name),
			Type:  s.FieldType(attr.Type),
			Label: structTagLabel(attr.Label),
		})
	}
	return data
}

// Declaration writes the struct of one element for storage s: one optional
// field per attribute in name order, a tag constant and a Tag method.
func Declaration(w io.Writer, el vo.ElementSpec, s Storage) error {
	return declarationTemplate.Execute(w, newDeclarationData(el, s))
}
