package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	LayoutFull   = "full"
	LayoutMarker = "marker"
)

type Log struct {
	Level       string
	Development bool
}

type Config struct {
	// IndexURL page listing all elements
	IndexURL string
	// GlobalAttributesURL page describing the attributes every element has
	GlobalAttributesURL string
	// ElementPathPrefix href prefix of index links pointing at element detail pages
	ElementPathPrefix string
	// Output file the generated source is written to
	Output string
	// Package name of the generated source
	Package string
	// Layout full or marker
	Layout      string
	Concurrency int
	Agent       string
	Timeout     time.Duration
	// IgnoreRobots do not consult robots.txt
	IgnoreRobots bool
	// Format run the generated source through the formatter
	Format bool
	// MetricsFile if set, metrics are written there in the prometheus text format
	MetricsFile string
	Log         Log
}

func Default() *Config {
	return &Config{
		IndexURL:            "https://developer.mozilla.org/en-US/docs/Web/HTML/Element",
		GlobalAttributesURL: "https://developer.mozilla.org/en-US/docs/Web/HTML/Global_attributes",
		ElementPathPrefix:   "/en-US/docs/Web/HTML/Element/",
		Output:              "elements_gen.go",
		Package:             "htmlelements",
		Layout:              LayoutFull,
		Concurrency:         4,
		Agent:               "foomo-htmlgen",
		Timeout:             time.Second * 10,
		Format:              true,
		Log: Log{
			Level: "info",
		},
	}
}

// Get loads a config file
func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}

// Load parses yaml on top of the defaults
func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	errValidate := conf.Validate()
	if errValidate != nil {
		return nil, errValidate
	}
	return conf, nil
}

func (c *Config) Validate() error {
	for name, u := range map[string]string{
		"indexurl":            c.IndexURL,
		"globalattributesurl": c.GlobalAttributesURL,
	} {
		parsed, errParse := url.Parse(u)
		if errParse != nil {
			return errors.New("can not parse " + name + ": " + errParse.Error())
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return errors.New(name + " must be an absolute url: " + u)
		}
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	switch c.Layout {
	case LayoutFull, LayoutMarker:
	default:
		return errors.New("unknown layout: " + c.Layout)
	}
	if c.Package == "" {
		return errors.New("package must not be empty")
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	return nil
}
