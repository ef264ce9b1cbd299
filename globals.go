package htmlgen

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/htmlgen/emit"
	"github.com/foomo/htmlgen/vo"
)

// ExtraAttribute holds every attribute that is not modeled by a field.
const ExtraAttribute = "extra"

func extraAttributeSpec() vo.AttributeSpec {
	return vo.AttributeSpec{
		Name:               ExtraAttribute,
		Description:        emit.Comment("Extra attributes of the element. This is a map of attribute names to their values, and the attribute names are in lowercase."),
		Type:               vo.SemanticTypeMapping,
		RequiresAllocation: true,
	}
}

// GlobalAttributes fetches the global attributes page.
func (g *Generator) GlobalAttributes(ctx context.Context) (vo.AttributeSet, error) {
	doc, errFetch := g.fetch(ctx, PageKindGlobals, g.conf.GlobalAttributesURL)
	if errFetch != nil {
		return vo.AttributeSet{}, errFetch
	}
	return globalAttributes(g.conf.GlobalAttributesURL, doc)
}

func globalAttributes(pageURL string, doc *goquery.Document) (vo.AttributeSet, error) {
	dl := doc.Find(SelectorGlobalAttributes).First()
	if dl.Length() == 0 {
		return vo.AttributeSet{}, &ParseError{URL: pageURL, Selector: SelectorGlobalAttributes}
	}
	attrs, errExtract := ExtractAttributes(pageURL, dl)
	if errExtract != nil {
		return vo.AttributeSet{}, errExtract
	}
	attrs.Set(extraAttributeSpec())
	return attrs, nil
}
