package vo

import "sort"

// SemanticType classifies what an attribute holds.
type SemanticType int

const (
	// SemanticTypeText free text
	SemanticTypeText SemanticType = iota
	// SemanticTypeFlag boolean attribute, present or absent
	SemanticTypeFlag
	// SemanticTypeMapping string to string map, like data-* or unmodeled attributes
	SemanticTypeMapping
)

func (t SemanticType) String() string {
	switch t {
	case SemanticTypeFlag:
		return "flag"
	case SemanticTypeMapping:
		return "mapping"
	default:
		return "text"
	}
}

// AttributeSpec describes one attribute of an element
type AttributeSpec struct {
	// Name normalized field name, unique within an AttributeSet
	Name string
	// Label as written in the reference, "accept-charset", "data-*"
	Label string
	// Description comment block, every line carries the comment marker
	Description        string
	Type               SemanticType
	RequiresAllocation bool
}

// AttributeSet is a name keyed set of attributes, iterated in name order.
type AttributeSet struct {
	attrs map[string]AttributeSpec
}

func NewAttributeSet(specs ...AttributeSpec) AttributeSet {
	s := AttributeSet{attrs: make(map[string]AttributeSpec, len(specs))}
	for _, spec := range specs {
		s.Set(spec)
	}
	return s
}

// Set inserts spec or replaces the attribute with the same name.
func (s *AttributeSet) Set(spec AttributeSpec) {
	if s.attrs == nil {
		s.attrs = map[string]AttributeSpec{}
	}
	s.attrs[spec.Name] = spec
}

func (s AttributeSet) Get(name string) (spec AttributeSpec, ok bool) {
	spec, ok = s.attrs[name]
	return
}

func (s AttributeSet) Len() int {
	return len(s.attrs)
}

// Names in ascending order
func (s AttributeSet) Names() []string {
	names := make([]string, 0, len(s.attrs))
	for name := range s.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs in name order
func (s AttributeSet) Specs() []AttributeSpec {
	specs := make([]AttributeSpec, 0, len(s.attrs))
	for _, name := range s.Names() {
		specs = append(specs, s.attrs[name])
	}
	return specs
}

// Clone returns an independent copy of s.
func (s AttributeSet) Clone() AttributeSet {
	c := AttributeSet{attrs: make(map[string]AttributeSpec, len(s.attrs))}
	for name, spec := range s.attrs {
		c.attrs[name] = spec
	}
	return c
}

// Overlay inserts every attribute of other into s. Attributes of other replace
// same named attributes of s. The names of replaced attributes whose
// description changed are returned in name order.
func (s *AttributeSet) Overlay(other AttributeSet) (conflicts []string) {
	for _, spec := range other.Specs() {
		if existing, ok := s.Get(spec.Name); ok && existing.Description != spec.Description {
			conflicts = append(conflicts, spec.Name)
		}
		s.Set(spec)
	}
	return conflicts
}
