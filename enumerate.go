package htmlgen

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/htmlgen/naming"
	"github.com/foomo/htmlgen/vo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Elements fetches the index page and every linked detail page. Detail pages
// are fetched concurrently, the result keeps the order of the index page.
// globals must be complete, every element starts from a copy of it.
func (g *Generator) Elements(ctx context.Context, globals vo.AttributeSet) ([]vo.ElementSpec, error) {
	indexDoc, errFetch := g.fetch(ctx, PageKindIndex, g.conf.IndexURL)
	if errFetch != nil {
		return nil, errFetch
	}
	links, errLinks := extractIndexLinks(g.conf.IndexURL, indexDoc, g.conf.ElementPathPrefix)
	if errLinks != nil {
		return nil, errLinks
	}
	g.logger.Info("enumerated elements", zap.Int("count", len(links)))

	elements := make([]vo.ElementSpec, len(links))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.conf.Concurrency)
	for i, link := range links {
		i, link := i, link
		eg.Go(func() error {
			doc, errFetchElement := g.fetch(egCtx, PageKindElement, link.targetURL)
			if errFetchElement != nil {
				return errFetchElement
			}
			el, conflicts, errBuild := buildElement(link, doc, globals)
			if errBuild != nil {
				return errBuild
			}
			if len(conflicts) > 0 {
				g.logger.Debug("element attributes override globals",
					zap.String("element", el.TagName),
					zap.Strings("attributes", conflicts),
				)
			}
			g.logger.Debug("scraped element",
				zap.String("element", el.TagName),
				zap.String("url", el.URL),
				zap.Bool("deprecated", el.Deprecated),
				zap.Int("attributes", el.Attributes.Len()),
			)
			elements[i] = el
			return nil
		})
	}
	if errWait := eg.Wait(); errWait != nil {
		return nil, errWait
	}
	return elements, nil
}

func buildElement(link indexLink, doc *goquery.Document, globals vo.AttributeSet) (el vo.ElementSpec, conflicts []string, err error) {
	own, errAttrs := ExtractAttributes(link.targetURL, doc.Find(SelectorElementAttributes).First())
	if errAttrs != nil {
		return vo.ElementSpec{}, nil, errAttrs
	}
	documentation, errDoc := ExtractDocumentation(link.targetURL, doc)
	if errDoc != nil {
		return vo.ElementSpec{}, nil, errDoc
	}
	attrs := globals.Clone()
	conflicts = attrs.Overlay(own)
	name := naming.TypeName(link.name)
	return vo.ElementSpec{
		Name:          name,
		TagName:       naming.TagName(name),
		Deprecated:    IsDeprecated(doc),
		URL:           link.targetURL,
		Attributes:    attrs,
		Documentation: documentation,
	}, conflicts, nil
}
