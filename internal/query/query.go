// Package query projects values out of resolved schema.org objects with
// RFC 9535 JSONPath expressions.
package query

import (
	"fmt"
	"iter"

	"github.com/theory/jsonpath"

	"github.com/denomica/jsonld/internal/errors"
	"github.com/denomica/jsonld/internal/models"
)

// Selector is a compiled JSONPath expression.
type Selector struct {
	path *jsonpath.Path
}

// Compile parses expr. An empty expression is an error.
func Compile(expr string) (*Selector, error) {
	if expr == "" {
		return nil, errors.NewQueryError("JSONPath expression is empty", errors.ErrInvalidQuery)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, errors.NewQueryError(fmt.Sprintf("invalid JSONPath %s: %v", expr, err), errors.ErrInvalidQuery)
	}
	return &Selector{path: path}, nil
}

// String returns the normalized expression.
func (s *Selector) String() string {
	return s.path.String()
}

// Select returns the values in obj matched by the expression, in match order.
func (s *Selector) Select(obj models.JSONObject) []any {
	return s.path.Select(obj)
}

// Project yields every match of sel across the objects of seq. Objects with
// no match contribute nothing.
func Project(seq iter.Seq[models.JSONObject], sel *Selector) iter.Seq[any] {
	return func(yield func(any) bool) {
		for obj := range seq {
			for _, match := range sel.Select(obj) {
				if !yield(match) {
					return
				}
			}
		}
	}
}
