package schemaorg

import (
	"iter"
	"maps"

	"github.com/denomica/jsonld/internal/models"
)

// IsGraph reports whether v is a schema.org element carrying an @graph that
// is an array or an object.
func IsGraph(v any) bool {
	if !IsElement(v) {
		return false
	}
	switch models.KindOf(v.(models.JSONObject)[GraphKey]) {
	case models.KindArray, models.KindObject:
		return true
	default:
		return false
	}
}

// Flatten yields the members of the graph container v in array order. A member
// without its own @context is yielded as a copy carrying the container's
// context. Flatten does not descend into members; nested containers are left
// for the caller. It yields nothing when v is not a graph container.
func Flatten(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		if !IsGraph(v) {
			return
		}
		container := v.(models.JSONObject)
		ctx, ok := container[ContextKey].(string)
		if !ok {
			ctx = DefaultContext
		}

		switch graph := container[GraphKey].(type) {
		case models.JSONArray:
			for _, member := range graph {
				if !yield(inheritContext(member, ctx)) {
					return
				}
			}
		case models.JSONObject:
			yield(inheritContext(graph, ctx))
		}
	}
}

// inheritContext returns member unchanged if it is not an object or already
// has an @context. Otherwise it returns a shallow copy with ctx added.
func inheritContext(member any, ctx string) any {
	obj, ok := models.AsObject(member)
	if !ok {
		return member
	}
	if _, has := obj[ContextKey]; has {
		return member
	}
	withContext := maps.Clone(obj)
	withContext[ContextKey] = ctx
	return withContext
}
