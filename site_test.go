package htmlgen

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foomo/htmlgen/config"
	"github.com/stretchr/testify/require"
)

const (
	testIndexPath   = "/docs/Web/HTML/Element"
	testGlobalsPath = "/docs/Web/HTML/Global_attributes"
	testPrefix      = "/docs/Web/HTML/Element/"
)

type testElementPage struct {
	summary    string
	deprecated bool
	// attributes are dt, dd pairs
	attributes [][2]string
	delay      time.Duration
}

type testSite struct {
	globals  [][2]string
	elements []string
	pages    map[string]testElementPage
	robots   string
}

func definitionList(pairs [][2]string) string {
	sb := &strings.Builder{}
	sb.WriteString("<dl>")
	for _, pair := range pairs {
		sb.WriteString("<dt><code>" + pair[0] + "</code></dt><dd>" + pair[1] + "</dd>")
	}
	sb.WriteString("</dl>")
	return sb.String()
}

func (s *testSite) indexHTML() string {
	sb := &strings.Builder{}
	sb.WriteString(`<html><body><table><tbody>`)
	for _, name := range s.elements {
		sb.WriteString(`<tr><td><a href="` + testPrefix + name + `"><code>&lt;` + name + `&gt;</code></a></td><td>` + name + `</td></tr>`)
	}
	sb.WriteString(`</tbody></table></body></html>`)
	return sb.String()
}

func (page testElementPage) html() string {
	notice := ""
	if page.deprecated {
		notice = `<div class="notecard deprecated"><p>Deprecated.</p></div>`
	}
	return `<html><body><main class="main-page-content">` +
		`<div class="section-content">` + notice + `<p>` + page.summary + `</p></div>` +
		`<section aria-labelledby="attributes"><div class="section-content">` + definitionList(page.attributes) + `</div></section>` +
		`</main></body></html>`
}

func (s *testSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/robots.txt":
		if s.robots == "" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(s.robots))
	case r.URL.Path == testIndexPath:
		_, _ = w.Write([]byte(s.indexHTML()))
	case r.URL.Path == testGlobalsPath:
		_, _ = w.Write([]byte(`<html><body><main class="main-page-content"><div class="section-content">` + definitionList(s.globals) + `</div></main></body></html>`))
	case strings.HasPrefix(r.URL.Path, testPrefix):
		page, ok := s.pages[strings.TrimPrefix(r.URL.Path, testPrefix)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		time.Sleep(page.delay)
		_, _ = w.Write([]byte(page.html()))
	default:
		http.NotFound(w, r)
	}
}

func (s *testSite) start(t *testing.T) (*httptest.Server, *config.Config) {
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	conf := config.Default()
	conf.IndexURL = srv.URL + testIndexPath
	conf.GlobalAttributesURL = srv.URL + testGlobalsPath
	conf.ElementPathPrefix = testPrefix
	conf.Output = t.TempDir() + "/out/elements_gen.go"
	conf.Timeout = 5 * time.Second
	require.NoError(t, conf.Validate())
	return srv, conf
}

func fooSite() *testSite {
	return &testSite{
		globals:  [][2]string{{"id", "The id."}},
		elements: []string{"bar"},
		pages: map[string]testElementPage{
			"bar": {summary: "The bar element.", attributes: [][2]string{{"baz", "The baz."}}},
		},
	}
}
