package htmlgen

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/htmlgen/vo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageURL = "https://example.com/docs/Web/HTML/Element/bar"

func getDoc(t *testing.T, html string) *goquery.Document {
	doc, errDoc := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, errDoc)
	return doc
}

func TestClassify(t *testing.T) {
	for _, name := range FlagAttributes {
		semanticType, requiresAllocation := Classify(name)
		assert.Equal(t, vo.SemanticTypeFlag, semanticType, name)
		assert.False(t, requiresAllocation, name)
	}
	semanticType, requiresAllocation := Classify("data")
	assert.Equal(t, vo.SemanticTypeMapping, semanticType)
	assert.True(t, requiresAllocation)
	semanticType, _ = Classify("ReadOnly")
	assert.Equal(t, vo.SemanticTypeFlag, semanticType)
	semanticType, _ = Classify("DATA")
	assert.Equal(t, vo.SemanticTypeMapping, semanticType)
	for _, name := range []string{"id", "class", "href", "type", "datalist", "hide"} {
		semanticType, requiresAllocation := Classify(name)
		assert.Equal(t, vo.SemanticTypeText, semanticType, name)
		assert.False(t, requiresAllocation, name)
	}
}

func TestExtractAttributes(t *testing.T) {
	doc := getDoc(t, `<dl>
		<dt id="id"><a href="#id"><code>id</code></a></dt>
		<dd>Defines an identifier.</dd>
		<dt><code>hidden</code></dt>
		<dd>Hides the element.<br>Really.</dd>
		<dt><code>type</code></dt>
		<dd>The type.</dd>
		<dt><code>data-*</code></dt>
		<dd>Custom data.</dd>
	</dl>`)
	attrs, errExtract := ExtractAttributes(testPageURL, doc.Find("dl"))
	require.NoError(t, errExtract)
	assert.Equal(t, []string{"data", "hidden", "id", "type_"}, attrs.Names())

	id, _ := attrs.Get("id")
	assert.Equal(t, "id", id.Label)
	assert.Equal(t, vo.SemanticTypeText, id.Type)
	assert.Equal(t, "// Defines an identifier.", id.Description)

	hidden, _ := attrs.Get("hidden")
	assert.Equal(t, vo.SemanticTypeFlag, hidden.Type)
	assert.Equal(t, "// Hides the element.\n//\n// Really.", hidden.Description)

	typ, _ := attrs.Get("type_")
	assert.Equal(t, "type", typ.Label)
	assert.Equal(t, vo.SemanticTypeText, typ.Type)

	data, _ := attrs.Get("data")
	assert.Equal(t, "data-*", data.Label)
	assert.Equal(t, vo.SemanticTypeMapping, data.Type)
	assert.True(t, data.RequiresAllocation)
}

func TestExtractAttributesEmpty(t *testing.T) {
	doc := getDoc(t, `<p>nothing here</p>`)
	attrs, errExtract := ExtractAttributes(testPageURL, doc.Find("dl"))
	require.NoError(t, errExtract)
	assert.Equal(t, 0, attrs.Len())
}

func TestExtractAttributesMissingDescription(t *testing.T) {
	doc := getDoc(t, `<dl><dt><code>id</code></dt><dd>ok</dd><dt><code>lonely</code></dt></dl>`)
	_, errExtract := ExtractAttributes(testPageURL, doc.Find("dl"))
	var extractionErr *ExtractionError
	require.ErrorAs(t, errExtract, &extractionErr)
	assert.Equal(t, testPageURL, extractionErr.URL)
	assert.Contains(t, extractionErr.Reason, "lonely")
}

func TestExtractAttributesOnlyFirstList(t *testing.T) {
	doc := getDoc(t, `<dl><dt>first</dt><dd>one</dd></dl><dl><dt>second</dt><dd>two</dd></dl>`)
	attrs, errExtract := ExtractAttributes(testPageURL, doc.Find("dl"))
	require.NoError(t, errExtract)
	assert.Equal(t, []string{"first"}, attrs.Names())
}

func TestExtractDocumentation(t *testing.T) {
	doc := getDoc(t, `<main class="main-page-content">
		<div class="section-content">
			<p>The <strong>bar</strong> element.</p>
			<p>Second paragraph.</p>
		</div>
	</main>`)
	documentation, errDoc := ExtractDocumentation(testPageURL, doc)
	require.NoError(t, errDoc)
	assert.Equal(t,
		"// The **bar** element.\n//\n// Second paragraph.\n//\n// More information: <"+testPageURL+">",
		documentation,
	)
}

func TestExtractDocumentationFallback(t *testing.T) {
	doc := getDoc(t, `<main class="main-page-content">
		<section aria-labelledby="summary">
			<div class="section-content">The summary.</div>
		</section>
	</main>`)
	documentation, errDoc := ExtractDocumentation(testPageURL, doc)
	require.NoError(t, errDoc)
	assert.Equal(t, "// The summary.\n//\n// More information: <"+testPageURL+">", documentation)
}

func TestExtractDocumentationEmpty(t *testing.T) {
	documentation, errDoc := ExtractDocumentation(testPageURL, getDoc(t, `<main></main>`))
	require.NoError(t, errDoc)
	assert.Equal(t, "// More information: <"+testPageURL+">", documentation)
}

func TestExtractDocumentationLinks(t *testing.T) {
	doc := getDoc(t, `<main class="main-page-content"><div class="section-content">
		<p>See <a href="/docs/Web/HTML/Element/foo">foo</a>.</p>
	</div></main>`)
	documentation, errDoc := ExtractDocumentation(testPageURL, doc)
	require.NoError(t, errDoc)
	assert.Contains(t, documentation, "https://example.com/docs/Web/HTML/Element/foo")
}

func TestIsDeprecated(t *testing.T) {
	deprecated := getDoc(t, `<main class="main-page-content"><div class="section-content">
		<div class="notecard deprecated"><p>Deprecated.</p></div>
	</div></main>`)
	assert.True(t, IsDeprecated(deprecated))
	nested := getDoc(t, `<main class="main-page-content"><section><div class="section-content">
		<div class="notecard deprecated"><p>Only one attribute is deprecated.</p></div>
	</div></section></main>`)
	assert.False(t, IsDeprecated(nested))
	assert.False(t, IsDeprecated(getDoc(t, `<main class="main-page-content"></main>`)))
}
