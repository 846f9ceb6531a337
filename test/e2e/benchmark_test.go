package e2e_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denomica/jsonld/schemaorg"
)

// generatePage builds an HTML page with the given number of JSON-LD blocks,
// alternating plain products, product arrays and graph containers
func generatePage(blocks int) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><head><title>bench</title></head><body>\n")
	for i := 0; i < blocks; i++ {
		sb.WriteString(`<div class="card"><p>filler text for the parser</p></div>`)
		sb.WriteString(`<script type="application/ld+json">`)
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, `{"@context":"https://schema.org","@type":"Product","name":"Product %d","sku":"%d"}`, i, i)
		case 1:
			fmt.Fprintf(&sb, `[{"@context":"https://schema.org","@type":"Offer","price":%d},{"@context":"https://schema.org","@type":"Product","name":"Product %d"}]`, i, i)
		case 2:
			fmt.Fprintf(&sb, `{"@context":"https://schema.org","@graph":[{"@type":"WebPage","name":"Page %d"},{"@type":["Product","Thing"],"name":"Product %d"}]}`, i, i)
		}
		sb.WriteString("</script>\n")
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func BenchmarkFromHTML(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		page := generatePage(size)
		b.Run(fmt.Sprintf("blocks=%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(page)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				objects, err := schemaorg.FromHTMLOfType(page, "Product")
				require.NoError(b, err)
				count := 0
				for range objects {
					count++
				}
				require.Equal(b, size, count)
			}
		})
	}
}

func BenchmarkFromHTML_FirstMatch(b *testing.B) {
	page := generatePage(1000)
	b.SetBytes(int64(len(page)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		objects, err := schemaorg.FromHTMLOfType(page, "Offer")
		require.NoError(b, err)
		for range objects {
			break
		}
	}
}
