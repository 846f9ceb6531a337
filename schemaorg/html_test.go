package schemaorg

import (
	"errors"
	"slices"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denomica/jsonld/internal/models"
)

const storePage = `<!DOCTYPE html>
<html>
<head>
  <title>Store</title>
  <script type="application/ld+json">
    {"@context": "https://schema.org", "@type": "Organization", "name": "Acme"}
  </script>
  <script>var notJSONLD = {"@context": "https://schema.org", "@type": "Product"};</script>
</head>
<body>
  <script type="application/json">{"@context": "https://schema.org", "@type": "Product", "name": "ignored"}</script>
  <script type="application/ld+json">
    [
      {"@context": "https://schema.org", "@type": "Product", "name": "Anvil"},
      {"@context": "https://schema.org", "@type": "Product", "name": "Rocket"}
    ]
  </script>
</body>
</html>`

func TestBlocks_SkipsMalformedBlocks(t *testing.T) {
	page := `<html><body>
<script type="application/ld+json">{"n": 1}</script>
<script type="application/ld+json">{"n": 2,</script>
<script type="application/ld+json">{"n": 3}</script>
</body></html>`

	blocks, err := Blocks(page)
	require.NoError(t, err)

	got := slices.Collect(blocks)
	require.Len(t, got, 2)
	assert.Equal(t, json.Number("1"), got[0].(models.JSONObject)["n"])
	assert.Equal(t, json.Number("3"), got[1].(models.JSONObject)["n"])
}

func TestBlocks_YieldsAnyJSONKind(t *testing.T) {
	page := `<script type="application/ld+json">"text"</script>
<script type="application/ld+json"></script>
<script type="application/ld+json">[1, 2]</script>`

	blocks, err := Blocks(page)
	require.NoError(t, err)

	got := slices.Collect(blocks)
	require.Len(t, got, 2)
	assert.Equal(t, "text", got[0])
	assert.Equal(t, models.KindArray, models.KindOf(got[1]))
}

func TestBlocks_TypeAttributeMustMatchExactly(t *testing.T) {
	page := `<script type="APPLICATION/LD+JSON">{"n": 1}</script>
<script type=" application/ld+json">{"n": 2}</script>
<script data-type="application/ld+json">{"n": 3}</script>
<script TYPE="application/ld+json">{"n": 4}</script>`

	blocks, err := Blocks(page)
	require.NoError(t, err)

	// Attribute names are case-insensitive in HTML; values are compared as written.
	got := slices.Collect(blocks)
	require.Len(t, got, 1)
	assert.Equal(t, json.Number("4"), got[0].(models.JSONObject)["n"])
}

func TestBlocks_NoScripts(t *testing.T) {
	for _, page := range []string{"", "<html></html>", "plain text, not markup"} {
		blocks, err := Blocks(page)
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(blocks))
	}
}

func TestReadBlocks_ReaderFailure(t *testing.T) {
	_, err := ReadBlocks(failingReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHTML))
}

func TestFromHTML_EndToEnd(t *testing.T) {
	all, err := FromHTML(storePage)
	require.NoError(t, err)
	assert.Equal(t, []any{"Acme", "Anvil", "Rocket"}, names(slices.Collect(all)))

	products, err := FromHTMLOfType(storePage, "Product")
	require.NoError(t, err)
	assert.Equal(t, []any{"Anvil", "Rocket"}, names(slices.Collect(products)))

	orgs, err := FromHTMLOfType(storePage, "Organization")
	require.NoError(t, err)
	assert.Equal(t, []any{"Acme"}, names(slices.Collect(orgs)))

	groups, err := FromHTMLOfType(storePage, "ProductGroup")
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(groups))
}

func TestFromHTML_GraphBlock(t *testing.T) {
	page := `<script type="application/ld+json">{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebSite", "name": "Site"},
			{"@type": ["Person", "Author"], "name": "Ada"}
		]
	}</script>`

	people, err := FromHTMLOfType(page, "person")
	require.NoError(t, err)

	got := slices.Collect(people)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0]["name"])
	assert.Equal(t, "https://schema.org", got[0]["@context"])
}

func TestFromHTML_StopsEarly(t *testing.T) {
	var sb strings.Builder
	for range 50 {
		sb.WriteString(`<script type="application/ld+json">{"@context": "https://schema.org", "@type": "Thing"}</script>`)
	}

	objects, err := FromHTML(sb.String())
	require.NoError(t, err)
	assert.Len(t, slices.Collect(Limit(objects, 3)), 3)
}

func TestFromJSON(t *testing.T) {
	objects, err := FromJSONOfType(`[
		{"@context": "https://schema.org", "@type": "Product", "name": "a"},
		{"@context": "https://schema.org", "@type": "Offer", "name": "b"}
	]`, "Offer")
	require.NoError(t, err)
	assert.Equal(t, []any{"b"}, names(slices.Collect(objects)))

	_, err = FromJSON(`{"@context": `)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidJSON))

	_, err = FromJSON("   ")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
