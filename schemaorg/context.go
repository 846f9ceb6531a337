package schemaorg

import (
	"slices"
	"strings"

	"github.com/denomica/jsonld/internal/models"
)

const (
	// ContextKey is the JSON-LD keyword naming an element's vocabulary.
	ContextKey = "@context"
	// TypeKey is the JSON-LD keyword naming an element's type.
	TypeKey = "@type"
	// GraphKey is the JSON-LD keyword holding the members of a graph container.
	GraphKey = "@graph"

	// DefaultContext is injected into graph members when the container has no
	// usable @context of its own.
	DefaultContext = "https://schema.org"
)

var contexts = []string{
	"https://schema.org",
	"https://schema.org/",
	"http://schema.org",
	"http://schema.org/",
}

// Contexts returns the @context spellings recognised as schema.org.
func Contexts() []string {
	return slices.Clone(contexts)
}

// IsElement reports whether v is a JSON object whose @context is a string
// naming schema.org. The comparison ignores case.
func IsElement(v any) bool {
	obj, ok := models.AsObject(v)
	if !ok {
		return false
	}
	ctx, ok := obj[ContextKey].(string)
	if !ok {
		return false
	}
	return slices.Contains(contexts, strings.ToLower(ctx))
}
