// Package schemaorg finds schema.org entities expressed as JSON-LD.
//
// Publishers embed structured data in web pages inside
// <script type="application/ld+json"> elements. A block may hold a single
// entity, an array of entities or an @graph container whose children share
// the container's @context. This package hides those equivalent forms and
// exposes every entity as an Object in document order:
//
//	objects, err := schemaorg.FromHTMLOfType(page, "Product")
//	if err != nil {
//		return err
//	}
//	for obj := range objects {
//		fmt.Println(obj["name"])
//	}
//
// All sequences are lazy. Script blocks are parsed and graphs flattened only
// as the caller ranges over the result, so breaking out of the loop early
// skips the remaining work. Parsed values are never modified; an entity that
// inherits its @context from a graph is yielded as a shallow copy.
//
// Only the schema.org vocabulary is recognised. Arbitrary @context documents
// are not fetched and no JSON-LD expansion or compaction is performed.
package schemaorg
