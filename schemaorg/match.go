package schemaorg

import (
	"strings"

	"github.com/denomica/jsonld/internal/models"
)

// MatchesType reports whether v is a schema.org element whose @type equals
// typeName, ignoring case. An array @type matches when any string entry does;
// entries of other kinds are ignored.
func MatchesType(v any, typeName string) bool {
	if !IsElement(v) {
		return false
	}
	switch t := v.(models.JSONObject)[TypeKey].(type) {
	case string:
		return strings.EqualFold(t, typeName)
	case models.JSONArray:
		for _, entry := range t {
			if s, ok := entry.(string); ok && strings.EqualFold(s, typeName) {
				return true
			}
		}
	}
	return false
}

// MatchesAnyType reports whether v matches at least one of typeNames.
// It is false when typeNames is empty.
func MatchesAnyType(v any, typeNames ...string) bool {
	for _, name := range typeNames {
		if MatchesType(v, name) {
			return true
		}
	}
	return false
}

// IsObjectType is MatchesAnyType under the name used by callers that test a
// single value rather than filter a sequence.
func IsObjectType(v any, typeNames ...string) bool {
	return MatchesAnyType(v, typeNames...)
}

// Types returns the string entries of v's @type in order. It returns nil when
// v is not a schema.org element or carries no string type.
func Types(v any) []string {
	if !IsElement(v) {
		return nil
	}
	switch t := v.(models.JSONObject)[TypeKey].(type) {
	case string:
		return []string{t}
	case models.JSONArray:
		var types []string
		for _, entry := range t {
			if s, ok := entry.(string); ok {
				types = append(types, s)
			}
		}
		return types
	}
	return nil
}
