package schemaorg

import (
	stderrors "errors"
	"io"
	"iter"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/denomica/jsonld/internal/errors"
	"github.com/denomica/jsonld/internal/parser"
)

// ScriptType is the type attribute that marks a script element as JSON-LD.
const ScriptType = "application/ld+json"

// Errors returned by the entry points, for use with errors.Is.
var (
	ErrEmptyInput  = errors.ErrEmptyInput
	ErrInvalidJSON = errors.ErrInvalidJSON
	ErrInvalidHTML = errors.ErrInvalidHTML
)

// Blocks loads the HTML document and yields the parsed content of each
// <script type="application/ld+json"> element in document order. A block
// that is not valid JSON is skipped and scanning continues. The error is
// non-nil only when the document itself cannot be loaded.
func Blocks(document string) (iter.Seq[any], error) {
	return ReadBlocks(strings.NewReader(document))
}

// ReadBlocks is Blocks for a document read from r.
func ReadBlocks(r io.Reader) (iter.Seq[any], error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.NewHTMLError("failed to load HTML document", stderrors.Join(errors.ErrInvalidHTML, err))
	}

	return func(yield func(any) bool) {
		index := 0
		for node := range root.Descendants() {
			if !isLDScript(node) {
				continue
			}
			index++
			doc, err := parser.ParseString(innerText(node))
			if err != nil {
				slog.Debug("skipping malformed JSON-LD block", "block", index, "error", err)
				continue
			}
			if !yield(doc.Root) {
				return
			}
		}
	}, nil
}

// FromHTML yields the schema.org objects of every JSON-LD block in document.
func FromHTML(document string) (iter.Seq[Object], error) {
	blocks, err := Blocks(document)
	if err != nil {
		return nil, err
	}
	return func(yield func(Object) bool) {
		for block := range blocks {
			if !resolve(block, yield) {
				return
			}
		}
	}, nil
}

// FromHTMLOfType is FromHTML restricted to objects matching one of typeNames.
func FromHTMLOfType(document string, typeNames ...string) (iter.Seq[Object], error) {
	objects, err := FromHTML(document)
	if err != nil {
		return nil, err
	}
	return Filter(objects, typeNames...), nil
}

// FromJSON parses text as a single JSON value and yields its schema.org
// objects. Malformed text is an error.
func FromJSON(text string) (iter.Seq[Object], error) {
	doc, err := parser.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Objects(doc.Root), nil
}

// FromJSONOfType is FromJSON restricted to objects matching one of typeNames.
func FromJSONOfType(text string, typeNames ...string) (iter.Seq[Object], error) {
	objects, err := FromJSON(text)
	if err != nil {
		return nil, err
	}
	return Filter(objects, typeNames...), nil
}

func isLDScript(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Script {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "type" {
			return attr.Val == ScriptType
		}
	}
	return false
}

func innerText(n *html.Node) string {
	var sb strings.Builder
	for child := range n.ChildNodes() {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}
