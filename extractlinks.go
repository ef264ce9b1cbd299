package htmlgen

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type indexLink struct {
	name      string
	targetURL string
}

// IndexSelector matches index table rows that link exactly one element: the
// link has to be the only child of the first cell.
func IndexSelector(elementPathPrefix string) string {
	return "td:first-child > a[href^='" + elementPathPrefix + "']:only-child"
}

func normalizeLink(baseURL *url.URL, linkURL string) (normalizedLink *url.URL, err error) {
	// let us ditch anchors
	anchorParts := strings.Split(linkURL, "#")
	linkURL = anchorParts[0]
	link, errParseLink := url.Parse(linkURL)
	if errParseLink != nil {
		err = errParseLink
		return
	}
	// host
	if link.Host == "" {
		link.Host = baseURL.Host
	}
	// scheme
	if link.Scheme == "" || link.Scheme == "//" {
		link.Scheme = baseURL.Scheme
	}
	if baseURL.User != nil {
		link.User = baseURL.User
	}
	normalizedLink = link
	return
}

// extractIndexLinks returns the element links of the index page in document order
func extractIndexLinks(indexURL string, doc *goquery.Document, elementPathPrefix string) (links []indexLink, err error) {
	baseURL, errParse := url.Parse(indexURL)
	if errParse != nil {
		return nil, &ParseError{URL: indexURL, Selector: "url"}
	}
	selector := IndexSelector(elementPathPrefix)
	anchors := doc.Find(selector)
	if anchors.Length() == 0 {
		return nil, &ParseError{URL: indexURL, Selector: selector}
	}
	// the same element may be listed more than once, the first link wins
	seen := map[string]bool{}
	anchors.EachWithBreak(func(i int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		// the name without the brackets
		text := []rune(firstText(a))
		if len(text) < 3 {
			err = &ExtractionError{URL: indexURL, Selector: selector, Reason: "link text is not a bracketed name: " + string(text)}
			return false
		}
		linkU, errNormalize := normalizeLink(baseURL, href)
		if errNormalize != nil {
			err = &ExtractionError{URL: indexURL, Selector: selector, Reason: errNormalize.Error()}
			return false
		}
		name := string(text[1 : len(text)-1])
		if seen[name] {
			return true
		}
		seen[name] = true
		links = append(links, indexLink{
			name:      name,
			targetURL: linkU.String(),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}
