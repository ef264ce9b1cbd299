package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	confComplete = `
---
indexurl: http://127.0.0.1:8080/en-US/docs/Web/HTML/Element
globalattributesurl: http://127.0.0.1:8080/en-US/docs/Web/HTML/Global_attributes
elementpathprefix: /en-US/docs/Web/HTML/Element/
output: gen/elements.go
package: tags
layout: marker
concurrency: 8
agent: test-agent
timeout: 3s
ignorerobots: true
format: false
metricsfile: metrics.prom
log:
  level: debug
  development: true
...
`
	confMinimal = `
---
package: tags
...
`
)

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	require.NoError(t, errCnf)
	assert.Equal(t, "http://127.0.0.1:8080/en-US/docs/Web/HTML/Element", cnf.IndexURL)
	assert.Equal(t, "gen/elements.go", cnf.Output)
	assert.Equal(t, LayoutMarker, cnf.Layout)
	assert.Equal(t, 8, cnf.Concurrency)
	assert.Equal(t, 3*time.Second, cnf.Timeout)
	assert.True(t, cnf.IgnoreRobots)
	assert.False(t, cnf.Format)
	assert.Equal(t, "debug", cnf.Log.Level)
	assert.True(t, cnf.Log.Development)

	cnf, errCnf = Load([]byte(confMinimal))
	require.NoError(t, errCnf)
	assert.Equal(t, "tags", cnf.Package)
	assert.Equal(t, Default().IndexURL, cnf.IndexURL)
	assert.Equal(t, LayoutFull, cnf.Layout)
	assert.True(t, cnf.Format)
	assert.Equal(t, 4, cnf.Concurrency)
}

func TestLoadInvalid(t *testing.T) {
	for name, yml := range map[string]string{
		"concurrency": "concurrency: 0",
		"layout":      "layout: fancy",
		"relative":    "indexurl: /en-US/docs/Web/HTML/Element",
		"package":     `package: ""`,
		"yaml":        "concurrency: [",
	} {
		_, errCnf := Load([]byte(yml))
		assert.Error(t, errCnf, name)
	}
}

func TestGet(t *testing.T) {
	file := filepath.Join(t.TempDir(), "htmlgen.yaml")
	require.NoError(t, os.WriteFile(file, []byte(confMinimal), 0o644))
	cnf, errGet := Get(file)
	require.NoError(t, errGet)
	assert.Equal(t, "tags", cnf.Package)

	_, errGet = Get(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, errGet)
}
