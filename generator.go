// Package htmlgen scrapes the MDN HTML element reference and generates Go
// types for every element, their attributes and a union over all of them.
package htmlgen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/htmlgen/config"
	"github.com/foomo/htmlgen/emit"
	"github.com/foomo/htmlgen/vo"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Generator struct {
	conf    *config.Config
	fetcher Fetcher
	logger  *zap.Logger
	metrics *metrics
}

// NewGenerator metrics are registered with registerer, which may be nil.
func NewGenerator(conf *config.Config, fetcher Fetcher, logger *zap.Logger, registerer prometheus.Registerer) (*Generator, error) {
	if errValidate := conf.Validate(); errValidate != nil {
		return nil, errValidate
	}
	if fetcher == nil {
		return nil, ErrNoFetcher
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m, errMetrics := setupMetrics(registerer)
	if errMetrics != nil {
		return nil, errMetrics
	}
	return &Generator{
		conf:    conf,
		fetcher: fetcher,
		logger:  logger,
		metrics: m,
	}, nil
}

func (g *Generator) fetch(ctx context.Context, kind PageKind, targetURL string) (*goquery.Document, error) {
	start := time.Now()
	doc, errFetch := g.fetcher.Fetch(ctx, targetURL)
	g.metrics.fetchDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	status := "ok"
	if errFetch != nil {
		status = "error"
		var fetchErr *FetchError
		if errors.As(errFetch, &fetchErr) && fetchErr.StatusCode != 0 {
			status = strconv.Itoa(fetchErr.StatusCode)
		}
	}
	g.metrics.fetchCounter.WithLabelValues(string(kind), status).Inc()
	return doc, errFetch
}

// Scrape builds the model: global attributes first, then every element.
func (g *Generator) Scrape(ctx context.Context) (*vo.Model, error) {
	globals, errGlobals := g.GlobalAttributes(ctx)
	if errGlobals != nil {
		return nil, errGlobals
	}
	g.logger.Info("global attributes", zap.Int("count", globals.Len()))
	elements, errElements := g.Elements(ctx, globals)
	if errElements != nil {
		return nil, errElements
	}
	model := &vo.Model{
		Source:   g.conf.IndexURL,
		Globals:  globals,
		Elements: elements,
	}
	g.metrics.elements.Set(float64(len(model.Elements)))
	g.metrics.deprecatedGauge.Set(float64(model.Deprecated()))
	return model, nil
}

// Render emits the source for model in the configured layout. A failing
// formatter is logged and the unformatted source is returned.
func (g *Generator) Render(model *vo.Model) ([]byte, error) {
	buf := &bytes.Buffer{}
	opts := emit.FileOptions{
		Package: g.conf.Package,
		Source:  model.Source,
	}
	var errEmit error
	switch g.conf.Layout {
	case config.LayoutMarker:
		errEmit = emit.MarkerFile(buf, opts, model)
	default:
		errEmit = emit.File(buf, opts, model)
	}
	if errEmit != nil {
		return nil, errEmit
	}
	if !g.conf.Format {
		return buf.Bytes(), nil
	}
	formatted, errFormat := emit.Format(buf.Bytes())
	if errFormat != nil {
		g.logger.Warn("formatter failed, keeping unformatted source", zap.Error(errFormat))
		return buf.Bytes(), nil
	}
	return formatted, nil
}

// Generate scrapes and renders. Nothing is returned when any page fails.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	model, errScrape := g.Scrape(ctx)
	if errScrape != nil {
		return nil, errScrape
	}
	return g.Render(model)
}

// Run generates and writes the configured output file.
func (g *Generator) Run(ctx context.Context) error {
	src, errGenerate := g.Generate(ctx)
	if errGenerate != nil {
		return errGenerate
	}
	if dir := filepath.Dir(g.conf.Output); dir != "." {
		if errMkdir := os.MkdirAll(dir, 0o755); errMkdir != nil {
			return errMkdir
		}
	}
	if errWrite := os.WriteFile(g.conf.Output, src, 0o644); errWrite != nil {
		return errWrite
	}
	g.logger.Info("wrote output", zap.String("file", g.conf.Output), zap.Int("bytes", len(src)))
	return nil
}
