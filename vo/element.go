package vo

// ElementSpec is the model of one scraped element. It is built once and not
// modified afterwards.
type ElementSpec struct {
	// Name type name "Blockquote"
	Name string
	// TagName lowercase hyphenated "blockquote"
	TagName    string
	Deprecated bool
	// URL of the detail page
	URL        string
	Attributes AttributeSet
	// Documentation comment block, ends with the reference line pointing at URL
	Documentation string
}

// Model is everything a generation run scraped.
type Model struct {
	// Source index page the elements were enumerated from
	Source string
	// Globals attributes shared by every element
	Globals AttributeSet
	// Elements in index page order
	Elements []ElementSpec
}

// Deprecated counts the deprecated elements of m.
func (m *Model) Deprecated() (count int) {
	for _, el := range m.Elements {
		if el.Deprecated {
			count++
		}
	}
	return
}
