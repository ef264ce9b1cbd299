package emit

import (
	"io"
	"text/template"

	"github.com/foomo/htmlgen/naming"
	"github.com/foomo/htmlgen/vo"
)

const (
	// UnionName is the type name of the union over all elements
	UnionName = "Element"
	// UnknownName is the element every unrecognized tag maps to
	UnknownName = "Unknown"
	// TagNameAttribute holds the tag name of an unknown element
	TagNameAttribute = "tag_name"
)

// UnknownElement is the element standing in for any tag that was not scraped.
func UnknownElement(globals vo.AttributeSet) vo.ElementSpec {
	attrs := globals.Clone()
	attrs.Set(vo.AttributeSpec{
		Name:        TagNameAttribute,
		Description: Comment("The tag name of the element."),
		Type:        vo.SemanticTypeText,
	})
	return vo.ElementSpec{
		Name:          UnknownName,
		TagName:       naming.TagName(UnknownName),
		Attributes:    attrs,
		Documentation: Comment("An unknown element."),
	}
}

type variantData struct {
	Name        string
	Type        string
	Tag         string
	Deprecation string
}

type accessorData struct {
	Doc       string
	Name      string
	Field     string
	FieldType string
	ValueType string
	Store     string
}

type unionData struct {
	Union       string
	Storage     string
	UnknownType string
	Variants    []variantData
	Accessors   []accessorData
}

var unionTemplate = template.Must(template.New("union").Parse(`
{{- $u := .Union -}}
// {{$u}} holds one {{.Storage}} element. The zero value holds an empty
// {{.UnknownType}}.
type {{$u}} struct {
	v any
}

func (e {{$u}}) current() any {
	if e.v == nil {
		return &{{.UnknownType}}{}
	}
	return e.v
}

func (e *{{$u}}) ensure() any {
	if e.v == nil {
		e.v = &{{.UnknownType}}{}
	}
	return e.v
}
{{range .Variants}}
// Wrap{{.Type}} wraps v, a nil v is replaced by an empty {{.Type}}.
{{- if .Deprecation}}
{{.Deprecation}}
{{- end}}
func Wrap{{.Type}}(v *{{.Type}}) {{$u}} {
	if v == nil {
		v = &{{.Type}}{}
	}
	return {{$u}}{v: v}
}

// As{{.Name}} returns the wrapped *{{.Type}}, ok is false for any other element.
{{- if .Deprecation}}
{{.Deprecation}}
{{- end}}
func (e {{$u}}) As{{.Name}}() (v *{{.Type}}, ok bool) {
	v, ok = e.current().(*{{.Type}})
	return
}
{{end}}
// {{$u}}FromTag returns an empty element for a lowercase tag name. Any tag
// name without an element of its own yields an empty {{.UnknownType}}.
func {{$u}}FromTag(tag string) {{$u}} {
	switch tag {
{{- range .Variants}}
	case {{.Type}}Tag:
		return {{$u}}{v: &{{.Type}}{}}
{{- end}}
	default:
		return {{$u}}{v: &{{.UnknownType}}{}}
	}
}

// Tag returns the tag name of the wrapped element.
func (e {{$u}}) Tag() string {
	switch v := e.current().(type) {
{{- range .Variants}}
	case *{{.Type}}:
		return v.Tag()
{{- end}}
	}
	return {{.UnknownType}}Tag
}

// Unwrap returns the pointer to the wrapped element.
func (e {{$u}}) Unwrap() any {
	return e.current()
}
{{range $a := .Accessors}}
{{- if $a.Doc}}
{{$a.Doc}}
{{- end}}
func (e {{$u}}) {{$a.Name}}() {{$a.FieldType}} {
	switch v := e.current().(type) {
{{- range $.Variants}}
	case *{{.Type}}:
		return v.{{$a.Field}}
{{- end}}
	}
	return nil
}

// Set{{$a.Name}} replaces {{$a.Name}} and returns the previous value.
func (e *{{$u}}) Set{{$a.Name}}(val {{$a.ValueType}}) (prev {{$a.FieldType}}) {
	switch v := e.ensure().(type) {
{{- range $.Variants}}
	case *{{.Type}}:
		prev, v.{{$a.Field}} = v.{{$a.Field}}, {{$a.Store}}
{{- end}}
	}
	return prev
}
{{end}}
`))

func newUnionData(elements []vo.ElementSpec, globals vo.AttributeSet, s Storage) unionData {
	data := unionData{
		Union:       s.UnionName(),
		Storage:     s.Name,
		UnknownType: s.TypeName(UnknownName),
	}
	for _, el := range elements {
		v := variantData{
			Name: el.Name,
			Type: s.TypeName(el.Name),
			Tag:  el.TagName,
		}
		if el.Deprecated {
			v.Deprecation = deprecation(el.TagName)
		}
		data.Variants = append(data.Variants, v)
	}
	for _, attr := range globals.Specs() {
		field := naming.GoName(attr.Name)
		data.Accessors = append(data.Accessors, accessorData{
			Doc:       attr.Description,
			Name:      field,
			Field:     field,
			FieldType: s.FieldType(attr.Type),
			ValueType: s.ValueType(attr.Type),
			Store:     s.Store(attr, "val"),
		})
	}
	return data
}

// Union writes the union over elements for storage s: a wrapper and accessor
// per element, a total constructor from tag names, a Tag dispatch and a
// getter and setter for every global attribute. elements must end with the
// UnknownElement.
func Union(w io.Writer, elements []vo.ElementSpec, globals vo.AttributeSet, s Storage) error {
	return unionTemplate.Execute(w, newUnionData(elements, globals, s))
}
