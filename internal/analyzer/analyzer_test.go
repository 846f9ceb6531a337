package analyzer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denomica/jsonld/schemaorg"
)

func object(fields map[string]any) schemaorg.Object {
	obj := schemaorg.Object{"@context": "https://schema.org"}
	for k, v := range fields {
		obj[k] = v
	}
	return obj
}

func TestAnalyze(t *testing.T) {
	objects := []schemaorg.Object{
		object(map[string]any{"@type": "Product", "name": "Anvil", "sku": "A1"}),
		object(map[string]any{"@type": "Organization", "name": "Acme", "url": "https://acme.test"}),
		object(map[string]any{"@type": "product", "name": "Rocket", "brand": "Acme"}),
		object(map[string]any{"name": "untyped"}),
	}

	inv := Analyze(slices.Values(objects))

	assert.Equal(t, 4, inv.Objects)
	require.Len(t, inv.Types, 3)

	assert.Equal(t, TypeStats{Type: "Product", Count: 2, Properties: []string{"brand", "name", "sku"}}, inv.Types[0])
	assert.Equal(t, TypeStats{Type: UntypedName, Count: 1, Properties: []string{"name"}}, inv.Types[1])
	assert.Equal(t, TypeStats{Type: "Organization", Count: 1, Properties: []string{"name", "url"}}, inv.Types[2])
}

func TestAnalyzer_MultipleTypes(t *testing.T) {
	a := NewAnalyzer()
	a.Add(object(map[string]any{"@type": []any{"Person", 3, "Author"}, "name": "Ada"}))

	inv := a.Inventory()
	assert.Equal(t, 1, inv.Objects)
	require.Len(t, inv.Types, 2)
	assert.Equal(t, "Author", inv.Types[0].Type)
	assert.Equal(t, "Person", inv.Types[1].Type)
	assert.Equal(t, []string{"name"}, inv.Types[1].Properties)
}

func TestAnalyzer_Empty(t *testing.T) {
	inv := NewAnalyzer().Inventory()
	assert.Zero(t, inv.Objects)
	assert.Empty(t, inv.Types)
}

func TestAnalyzer_RepeatedTypeCountedOnce(t *testing.T) {
	a := NewAnalyzer()
	a.Add(object(map[string]any{"@type": []any{"Thing", "THING"}}))

	inv := a.Inventory()
	require.Len(t, inv.Types, 1)
	assert.Equal(t, 1, inv.Types[0].Count)
	assert.Empty(t, inv.Types[0].Properties)
}
