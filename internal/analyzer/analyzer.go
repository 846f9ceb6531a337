package analyzer

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/denomica/jsonld/schemaorg"
)

// UntypedName is the inventory entry for objects without a string @type.
const UntypedName = "(untyped)"

// TypeStats describes the objects seen for one schema.org type.
type TypeStats struct {
	Type       string   `json:"type" yaml:"type"`
	Count      int      `json:"count" yaml:"count"`
	Properties []string `json:"properties" yaml:"properties"`
}

// Inventory summarises a stream of schema.org objects.
type Inventory struct {
	Objects int         `json:"objects" yaml:"objects"`
	Types   []TypeStats `json:"types" yaml:"types"`
}

type typeEntry struct {
	count      int
	properties map[string]struct{}
}

// Analyzer accumulates type statistics one object at a time.
type Analyzer struct {
	// objects counts every object added, whatever its types
	objects int
	// types is keyed by the type name as first written; later spellings that
	// differ only in case are folded into it
	types map[string]*typeEntry
	// canonical maps a lower-cased type name to its key in types
	canonical map[string]string
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		types:     make(map[string]*typeEntry),
		canonical: make(map[string]string),
	}
}

// Add records obj under each of its types. An object with several types is
// counted once per distinct type.
func (a *Analyzer) Add(obj schemaorg.Object) {
	a.objects++

	types := schemaorg.Types(obj)
	if len(types) == 0 {
		types = []string{UntypedName}
	}

	counted := make(map[*typeEntry]bool, len(types))
	for _, name := range types {
		entry := a.entry(name)
		if counted[entry] {
			continue
		}
		counted[entry] = true
		entry.count++
		for key := range obj {
			if strings.HasPrefix(key, "@") {
				continue
			}
			entry.properties[key] = struct{}{}
		}
	}
}

func (a *Analyzer) entry(name string) *typeEntry {
	folded := strings.ToLower(name)
	if key, ok := a.canonical[folded]; ok {
		return a.types[key]
	}
	a.canonical[folded] = name
	entry := &typeEntry{properties: make(map[string]struct{})}
	a.types[name] = entry
	return entry
}

// Inventory returns the statistics gathered so far, most frequent type
// first and ties broken by name.
func (a *Analyzer) Inventory() Inventory {
	inv := Inventory{
		Objects: a.objects,
		Types:   make([]TypeStats, 0, len(a.types)),
	}
	for name, entry := range a.types {
		inv.Types = append(inv.Types, TypeStats{
			Type:       name,
			Count:      entry.count,
			Properties: slices.Sorted(maps.Keys(entry.properties)),
		})
	}
	slices.SortFunc(inv.Types, func(x, y TypeStats) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Type, y.Type)
	})
	return inv
}

// Analyze drains seq into a new Analyzer and returns its inventory.
func Analyze(seq iter.Seq[schemaorg.Object]) Inventory {
	a := NewAnalyzer()
	for obj := range seq {
		a.Add(obj)
	}
	return a.Inventory()
}
