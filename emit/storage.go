package emit

import "github.com/foomo/htmlgen/vo"

type goType struct {
	field string
	value string
	// store wraps the setter argument before it is assigned to the field
	store func(expr string, attr vo.AttributeSpec) string
}

func plain(expr string, _ vo.AttributeSpec) string {
	return expr
}

func address(expr string, _ vo.AttributeSpec) string {
	return "&" + expr
}

// Storage decides how attribute values are represented in generated code.
type Storage struct {
	Name string
	// Suffix is appended to every generated type name
	Suffix  string
	flag    goType
	text    goType
	mapping goType
}

// Borrowed text and map values are byte slices into a buffer owned by the caller.
var Borrowed = Storage{
	Name:    "borrowed",
	Suffix:  "",
	flag:    goType{field: "*bool", value: "bool", store: address},
	text:    goType{field: "[]byte", value: "[]byte", store: plain},
	mapping: goType{field: "map[string][]byte", value: "map[string][]byte", store: plain},
}

// Owned text and map values own their storage.
var Owned = Storage{
	Name:   "owned",
	Suffix: "Owned",
	flag:   goType{field: "*bool", value: "bool", store: address},
	text:   goType{field: "*string", value: "string", store: address},
	mapping: goType{
		field: "map[string]string",
		value: "map[string]string",
		store: func(expr string, attr vo.AttributeSpec) string {
			if attr.RequiresAllocation {
				return "maps.Clone(" + expr + ")"
			}
			return expr
		},
	},
}

// Storages in emission order
var Storages = []Storage{Borrowed, Owned}

func (s Storage) goType(t vo.SemanticType) goType {
	switch t {
	case vo.SemanticTypeFlag:
		return s.flag
	case vo.SemanticTypeMapping:
		return s.mapping
	default:
		return s.text
	}
}

// FieldType is the optional field type, nil means absent.
func (s Storage) FieldType(t vo.SemanticType) string {
	return s.goType(t).field
}

// ValueType is the setter argument type.
func (s Storage) ValueType(t vo.SemanticType) string {
	return s.goType(t).value
}

// Store returns the expression assigning the setter argument expr to a field.
func (s Storage) Store(attr vo.AttributeSpec, expr string) string {
	return s.goType(attr.Type).store(expr, attr)
}

func (s Storage) TypeName(elementName string) string {
	return elementName + s.Suffix
}

func (s Storage) UnionName() string {
	return s.TypeName(UnionName)
}
