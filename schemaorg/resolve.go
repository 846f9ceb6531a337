package schemaorg

import (
	"iter"

	"github.com/denomica/jsonld/internal/models"
)

// Object is a schema.org element: a JSON object whose @context names
// schema.org.
type Object = models.JSONObject

// Objects yields every schema.org object contained in v in pre-order,
// left-to-right. Graph containers are replaced by their members, arrays are
// searched element by element and anything else that is not a schema.org
// element is skipped.
func Objects(v any) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		resolve(v, yield)
	}
}

// ObjectsOfType yields the objects of Objects(v) whose @type matches one of
// typeNames. With no typeNames it yields nothing.
func ObjectsOfType(v any, typeNames ...string) iter.Seq[Object] {
	return Filter(Objects(v), typeNames...)
}

// Filter yields the objects of seq matching one of typeNames, keeping order.
func Filter(seq iter.Seq[Object], typeNames ...string) iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for obj := range seq {
			if MatchesAnyType(obj, typeNames...) && !yield(obj) {
				return
			}
		}
	}
}

// Limit yields at most n values of seq. A non-positive n means no limit.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// resolve walks v and reports false once yield has asked to stop.
func resolve(v any, yield func(Object) bool) bool {
	switch models.KindOf(v) {
	case models.KindObject:
		if IsGraph(v) {
			for member := range Flatten(v) {
				if !resolve(member, yield) {
					return false
				}
			}
			return true
		}
		if IsElement(v) {
			return yield(v.(Object))
		}
		return true
	case models.KindArray:
		for _, item := range v.(models.JSONArray) {
			if !resolve(item, yield) {
				return false
			}
		}
		return true
	case models.KindNull, models.KindBool, models.KindNumber, models.KindString, models.KindInvalid:
		return true
	default:
		return true
	}
}
