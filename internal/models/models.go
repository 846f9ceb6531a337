package models

import (
	json "github.com/goccy/go-json"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue = any

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
// It is an alias so that values decoded by any JSON library share one type.
type JSONObject = map[string]any

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray = []any

// Kind is the tag of the JSON value union.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// KindOf reports which member of the JSON union v holds. Values that the
// parser never produces (channels, structs, ...) are KindInvalid.
func KindOf(v JSONValue) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number, float64, float32, int, int32, int64, uint, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case JSONArray:
		return KindArray
	case JSONObject:
		return KindObject
	default:
		return KindInvalid
	}
}

// AsObject returns v as a JSONObject when it is one.
func AsObject(v JSONValue) (JSONObject, bool) {
	obj, ok := v.(JSONObject)
	return obj, ok
}

// Document holds one parsed JSON text together with the kind of its root.
type Document struct {
	Root     JSONValue
	RootKind Kind
}
