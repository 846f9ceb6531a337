package formatter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/denomica/jsonld/internal/analyzer"
	"github.com/denomica/jsonld/internal/config"
	"github.com/denomica/jsonld/internal/errors"
)

// Formatter renders a stream of JSON values in one output format
type Formatter struct {
	format string
	indent int
}

// NewFormatter creates a Formatter for one of the config.Format* values.
// indent is the number of spaces per nesting level; 0 selects compact JSON.
func NewFormatter(format string, indent int) (*Formatter, error) {
	switch format {
	case config.FormatJSON, config.FormatNDJSON, config.FormatYAML, config.FormatSummary:
	default:
		return nil, errors.NewOutputError(fmt.Sprintf("unknown output format '%s'", format), errors.ErrUnknownFormat)
	}
	if indent < 0 {
		indent = 0
	}
	return &Formatter{format: format, indent: indent}, nil
}

// Format returns the output format name
func (f *Formatter) Format() string {
	return f.format
}

// Write renders every value of seq to w as it is produced and returns the
// number of values written. Nothing is buffered beyond the current value.
func (f *Formatter) Write(w io.Writer, seq iter.Seq[any]) (int, error) {
	bw := bufio.NewWriter(w)

	var (
		n   int
		err error
	)
	switch f.format {
	case config.FormatJSON:
		n, err = f.writeJSONArray(bw, seq)
	case config.FormatNDJSON:
		n, err = f.writeNDJSON(bw, seq)
	case config.FormatYAML:
		n, err = f.writeYAML(bw, seq)
	default:
		return 0, errors.NewOutputError(fmt.Sprintf("format '%s' does not render values", f.format), errors.ErrUnknownFormat)
	}
	if err != nil {
		return n, errors.NewOutputError("failed to write output", err)
	}
	if err := bw.Flush(); err != nil {
		return n, errors.NewOutputError("failed to write output", err)
	}
	return n, nil
}

// writeJSONArray writes a single JSON array, one element at a time
func (f *Formatter) writeJSONArray(w io.Writer, seq iter.Seq[any]) (int, error) {
	pad := strings.Repeat(" ", f.indent)

	n := 0
	for v := range seq {
		data, err := encode(v, pad, pad)
		if err != nil {
			return n, err
		}

		sep := ","
		if n == 0 {
			sep = "["
		}
		if f.indent > 0 {
			sep += "\n" + pad
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return n, err
		}
		if _, err := w.Write(data); err != nil {
			return n, err
		}
		n++
	}

	closing := "]\n"
	switch {
	case n == 0:
		closing = "[]\n"
	case f.indent > 0:
		closing = "\n]\n"
	}
	_, err := io.WriteString(w, closing)
	return n, err
}

// writeNDJSON writes one compact JSON value per line
func (f *Formatter) writeNDJSON(w io.Writer, seq iter.Seq[any]) (int, error) {
	n := 0
	for v := range seq {
		data, err := encode(v, "", "")
		if err != nil {
			return n, err
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// writeYAML writes a YAML stream with one document per value
func (f *Formatter) writeYAML(w io.Writer, seq iter.Seq[any]) (int, error) {
	enc := yaml.NewEncoder(w)
	if f.indent > 0 {
		enc.SetIndent(f.indent)
	}

	n := 0
	for v := range seq {
		if err := enc.Encode(yamlValue(v)); err != nil {
			return n, err
		}
		n++
	}
	return n, enc.Close()
}

// yamlValue copies v with every json.Number replaced by a plain YAML
// scalar carrying the source digits. The input tree is left untouched.
func yamlValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(val), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(val)}
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = yamlValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = yamlValue(item)
		}
		return out
	default:
		return v
	}
}

// encode marshals v without HTML escaping and without a trailing newline
func encode(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent(prefix, indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteSummary prints inv as an aligned table followed by a total line
func (f *Formatter) WriteSummary(w io.Writer, inv analyzer.Inventory) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tCOUNT\tPROPERTIES")
	for _, stats := range inv.Types {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", stats.Type, stats.Count, strings.Join(stats.Properties, ", "))
	}
	if err := tw.Flush(); err != nil {
		return errors.NewOutputError("failed to write summary", err)
	}

	noun := "objects"
	if inv.Objects == 1 {
		noun = "object"
	}
	if _, err := fmt.Fprintf(w, "\n%d %s\n", inv.Objects, noun); err != nil {
		return errors.NewOutputError("failed to write summary", err)
	}
	return nil
}
