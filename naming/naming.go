// Package naming turns the display names found on reference pages into the
// identifiers used by the generator.
//
// Three conventions exist: type names ("FooBar"), field names ("foo_bar") and
// tag names ("foo-bar"). TagName(TypeName(x)) yields the hyphenated form of x.
package naming

import (
	"strings"
	"unicode"

	"github.com/ettle/strcase"
)

// ReservedMarker is appended to a field name that collides with a reserved word.
const ReservedMarker = "_"

// ReservedWords are field names that need the ReservedMarker.
var ReservedWords = []string{"type", "loop", "async", "for", "as"}

// goCaser upper cases the common Go initialisms, "id" -> "ID".
var goCaser = strcase.NewCaser(true, map[string]bool{
	"CSS":  true,
	"HTML": true,
	"HTTP": true,
	"ID":   true,
	"URI":  true,
	"URL":  true,
	"XML":  true,
}, nil)

// IsReserved reports whether name is one of the ReservedWords.
func IsReserved(name string) bool {
	for _, w := range ReservedWords {
		if w == name {
			return true
		}
	}
	return false
}

// delimit drops brackets and other markup around raw and separates the
// remaining runs of letters and digits with "_": "<font-face>" -> "font_face".
func delimit(raw string) string {
	return strings.Join(strings.FieldsFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), "_")
}

// TypeName converts raw to upper camel case: "font-face" -> "FontFace".
func TypeName(raw string) string {
	return strcase.ToPascal(delimit(raw))
}

// FieldName converts raw to snake case and appends the ReservedMarker when the
// result is a reserved word: "accept-charset" -> "accept_charset", "type" -> "type_".
func FieldName(raw string) string {
	name := strcase.ToSnake(delimit(raw))
	if IsReserved(name) {
		name += ReservedMarker
	}
	return name
}

// TagName converts a type name to its lowercase hyphenated tag: "FontFace" -> "font-face".
func TagName(typeName string) string {
	return strcase.ToKebab(typeName)
}

// GoName maps a field name to an exported Go identifier. Initialisms are upper
// cased and a trailing ReservedMarker survives, so "type_" becomes "Type_".
func GoName(fieldName string) string {
	base := strings.TrimSuffix(fieldName, ReservedMarker)
	name := goCaser.ToPascal(base)
	if base != fieldName {
		name += ReservedMarker
	}
	return name
}
