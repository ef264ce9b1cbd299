package htmlgen

import (
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/htmlgen/emit"
	"github.com/foomo/htmlgen/naming"
	"github.com/foomo/htmlgen/vo"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

const (
	SelectorGlobalAttributes  = "dl"
	SelectorElementAttributes = ".section-content > dl"
	SelectorDeprecated        = ".main-page-content > .section-content > .notecard.deprecated"
	SelectorSummary           = ".main-page-content > .section-content > p"
	SelectorSummaryFallback   = ".main-page-content > section[aria-labelledby='summary'] > .section-content"
)

// MappingAttribute is the only scraped attribute holding a map.
const MappingAttribute = "data"

// FlagAttributes are the attributes classified as boolean flags.
var FlagAttributes = []string{
	"autofocus",
	"checked",
	"disabled",
	"multiple",
	"readonly",
	"required",
	"selected",
	"hidden",
	"novalidate",
	"formnovalidate",
}

var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)

// Classify maps an attribute name to its semantic type.
func Classify(name string) (semanticType vo.SemanticType, requiresAllocation bool) {
	name = cases.Fold().String(name)
	if name == MappingAttribute {
		return vo.SemanticTypeMapping, true
	}
	for _, flag := range FlagAttributes {
		if flag == name {
			return vo.SemanticTypeFlag, false
		}
	}
	return vo.SemanticTypeText, false
}

// ExtractAttributes reads the dt / dd pairs of a definition list. Every dt
// must be followed by a dd. An empty selection yields an empty set.
func ExtractAttributes(pageURL string, dl *goquery.Selection) (attrs vo.AttributeSet, err error) {
	attrs = vo.NewAttributeSet()
	dl.First().ChildrenFiltered("dt").EachWithBreak(func(i int, dt *goquery.Selection) bool {
		label := firstText(dt)
		if label == "" {
			err = &ExtractionError{URL: pageURL, Selector: "dt", Reason: "term without text"}
			return false
		}
		dd := dt.NextAllFiltered("dd").First()
		if dd.Length() == 0 {
			err = &ExtractionError{URL: pageURL, Selector: "dt + dd", Reason: "no description for " + label}
			return false
		}
		description, errDescription := renderHTML(pageURL, dd)
		if errDescription != nil {
			err = &ExtractionError{URL: pageURL, Selector: "dt + dd", Reason: errDescription.Error()}
			return false
		}
		name := naming.FieldName(label)
		semanticType, requiresAllocation := Classify(strings.TrimSuffix(name, naming.ReservedMarker))
		attrs.Set(vo.AttributeSpec{
			Name:               name,
			Label:              label,
			Description:        emit.Comment(description),
			Type:               semanticType,
			RequiresAllocation: requiresAllocation,
		})
		return true
	})
	if err != nil {
		return vo.AttributeSet{}, err
	}
	return attrs, nil
}

// ExtractDocumentation returns the summary of a detail page as a comment
// block. The block always ends with a line referring to pageURL.
func ExtractDocumentation(pageURL string, doc *goquery.Document) (string, error) {
	summary := doc.Find(SelectorSummary)
	if summary.Length() == 0 {
		summary = doc.Find(SelectorSummaryFallback)
	}
	paragraphs := []string{}
	var err error
	summary.EachWithBreak(func(i int, s *goquery.Selection) bool {
		text, errRender := renderHTML(pageURL, s)
		if errRender != nil {
			err = &ExtractionError{URL: pageURL, Selector: SelectorSummary, Reason: errRender.Error()}
			return false
		}
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		return true
	})
	if err != nil {
		return "", err
	}
	paragraphs = append(paragraphs, "More information: <"+pageURL+">")
	return emit.Comment(strings.Join(paragraphs, "\n\n")), nil
}

// IsDeprecated checks for a deprecation notice in the main content.
func IsDeprecated(doc *goquery.Document) bool {
	return doc.Find(SelectorDeprecated).Length() > 0
}

// renderHTML turns the inner html of s into text, line break markup becomes a
// paragraph break
func renderHTML(pageURL string, s *goquery.Selection) (string, error) {
	innerHTML, errHTML := s.Html()
	if errHTML != nil {
		return "", errHTML
	}
	opts := []converter.ConvertOptionFunc{}
	if u, errParse := url.Parse(pageURL); errParse == nil && u.Host != "" {
		opts = append(opts, converter.WithDomain(u.Scheme+"://"+u.Host))
	}
	paragraphs := []string{}
	for _, part := range lineBreak.Split(innerHTML, -1) {
		markdown, errConvert := htmltomarkdown.ConvertString(part, opts...)
		if errConvert != nil {
			return "", errConvert
		}
		markdown = strings.TrimSpace(markdown)
		if markdown != "" {
			paragraphs = append(paragraphs, markdown)
		}
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

// firstText returns the first non blank text node below s
func firstText(s *goquery.Selection) string {
	var walk func(n *html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.TextNode {
			return strings.TrimSpace(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if text := walk(c); text != "" {
				return text
			}
		}
		return ""
	}
	for _, n := range s.Nodes {
		if text := walk(n); text != "" {
			return text
		}
	}
	return ""
}
