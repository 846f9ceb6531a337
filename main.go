package main

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/denomica/jsonld/internal/analyzer"
	"github.com/denomica/jsonld/internal/config"
	"github.com/denomica/jsonld/internal/errors"
	"github.com/denomica/jsonld/internal/formatter"
	"github.com/denomica/jsonld/internal/parser"
	"github.com/denomica/jsonld/internal/query"
	"github.com/denomica/jsonld/schemaorg"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string   `help:"Path to input HTML or JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Types   []string `help:"Keep only objects of this schema.org type. Repeat or separate with commas." short:"t" name:"type"`
	Mode    string   `help:"How to read the input: auto, html or json." short:"m"`
	Format  string   `help:"Output format: json, ndjson, yaml or summary." short:"f"`
	Select  string   `help:"JSONPath expression applied to each object; matches are written instead of objects. Not valid with the summary format." short:"s"`
	Limit   int      `help:"Stop after this many objects (0 = no limit)." short:"n"`
	Indent  int      `help:"Spaces of JSON/YAML indentation (0 = compact JSON)." default:"-1"`
	Config  string   `help:"Path to a YAML config file. Defaults to the nearest .jsonld.yml." short:"c" type:"path"`
	Debug   bool     `help:"Enable debug logging." short:"d"`
	Version bool     `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Stdin  io.Reader
	Stdout io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	app := kong.Must(&CLI,
		kong.Name("jsonld"),
		kong.Description("Extract schema.org JSON-LD objects from HTML pages and JSON documents"),
		kong.UsageOnError(),
	)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		// Usage has already been shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonld version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
	setupLogging(cfg.Dev.Debug)

	err = run(&Context{
		Debug:  cfg.Dev.Debug,
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonld --help\n")
		os.Exit(1)
	}
}

// loadConfig merges the config file, if any, with the command line
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	overrides := config.CLIOverrides{
		Mode:   CLI.Mode,
		Types:  CLI.Types,
		Format: CLI.Format,
		Select: CLI.Select,
		Limit:  CLI.Limit,
		Debug:  CLI.Debug,
	}
	if CLI.Indent >= 0 {
		indent := CLI.Indent
		overrides.Indent = &indent
	}

	cfg, err := config.LoadConfigWithCLI(configPath, overrides)
	if err != nil {
		return nil, errors.NewConfigError(err.Error(), err)
	}
	return cfg, nil
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	// 1. Read input
	data, err := readInput(ctx)
	if err != nil {
		return err
	}

	// 2. Resolve schema.org objects
	mode := detectMode(cfg.Input.Mode, data)
	slog.Debug("resolving objects", "mode", mode, "bytes", len(data))

	var objects iter.Seq[schemaorg.Object]
	switch mode {
	case config.ModeJSON:
		objects, err = schemaorg.FromJSON(string(data))
	default:
		objects, err = schemaorg.FromHTML(string(data))
	}
	if err != nil {
		return err
	}

	// 3. Filter and limit
	if types := cfg.TypeNames(); len(types) > 0 {
		slog.Debug("filtering objects", "types", types)
		objects = schemaorg.Filter(objects, types...)
	}
	objects = schemaorg.Limit(objects, cfg.Output.Limit)

	// 4. Output the result
	f, err := formatter.NewFormatter(cfg.Output.Format, cfg.Output.Indent)
	if err != nil {
		return err
	}

	var values iter.Seq[any]
	if f.Format() != config.FormatSummary {
		values = asValues(objects)
		if cfg.Output.Select != "" {
			sel, err := query.Compile(cfg.Output.Select)
			if err != nil {
				return err
			}
			slog.Debug("projecting objects", "select", sel.String())
			values = query.Project(objects, sel)
		}
	}

	return writeOutput(ctx, func(w io.Writer) error {
		if values == nil {
			return f.WriteSummary(w, analyzer.Analyze(objects))
		}
		n, err := f.Write(w, values)
		slog.Debug("wrote values", "count", n, "format", f.Format())
		return err
	})
}

// readInput reads the whole input from file or stdin
func readInput(ctx *Context) ([]byte, error) {
	if CLI.Input != "" {
		return parser.ReadFile(CLI.Input)
	}

	stdin := ctx.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	// A terminal on stdin means nothing was piped in
	if file, ok := stdin.(*os.File); ok {
		info, err := file.Stat()
		if err != nil {
			return nil, errors.NewInputError("failed to access stdin", err)
		}
		if info.Mode()&os.ModeCharDevice != 0 {
			return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return data, nil
}

// detectMode resolves "auto" by looking at the first non-space byte
func detectMode(mode string, data []byte) string {
	if mode != config.ModeAuto {
		return mode
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return config.ModeJSON
	}
	return config.ModeHTML
}

func asValues(objects iter.Seq[schemaorg.Object]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for obj := range objects {
			if !yield(obj) {
				return
			}
		}
	}
}

// writeOutput runs write against the output file or stdout
func writeOutput(ctx *Context, write func(io.Writer) error) error {
	if CLI.Output == "" {
		stdout := ctx.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		return write(stdout)
	}

	file, err := os.Create(CLI.Output)
	if err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create file '%s'", CLI.Output), err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
	}
	fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
	return nil
}
