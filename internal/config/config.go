package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/denomica/jsonld/internal/errors"
)

// Input modes
const (
	ModeAuto = "auto"
	ModeHTML = "html"
	ModeJSON = "json"
)

// Output formats
const (
	FormatJSON    = "json"
	FormatNDJSON  = "ndjson"
	FormatYAML    = "yaml"
	FormatSummary = "summary"
)

var (
	modes   = []string{ModeAuto, ModeHTML, ModeJSON}
	formats = []string{FormatJSON, FormatNDJSON, FormatYAML, FormatSummary}
)

// Config represents the complete configuration for jsonld
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Types  TypesConfig  `yaml:"types"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// InputConfig controls how input is interpreted
type InputConfig struct {
	Mode string `yaml:"mode"` // auto, html or json
}

// TypesConfig controls which schema.org types are selected
type TypesConfig struct {
	Filter   []string          `yaml:"filter"`
	Aliases  map[string]string `yaml:"aliases"`
	Camelize bool              `yaml:"camelize"`
}

// OutputConfig controls how resolved objects are written
type OutputConfig struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
	Limit  int    `yaml:"limit"`
	Select string `yaml:"select"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Input: InputConfig{
			Mode: ModeAuto,
		},
		Types: TypesConfig{
			Filter:   []string{},
			Aliases:  make(map[string]string),
			Camelize: false,
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Indent: 2,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonld.yml", ".jsonld.yaml", "jsonld.yml", "jsonld.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if !slices.Contains(modes, c.Input.Mode) {
		return fmt.Errorf("%w '%s' (want one of %v)", errors.ErrUnknownMode, c.Input.Mode, modes)
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("%w '%s' (want one of %v)", errors.ErrUnknownFormat, c.Output.Format, formats)
	}
	if c.Output.Format == FormatSummary && c.Output.Select != "" {
		return fmt.Errorf("select cannot be combined with the %s format", FormatSummary)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Output.Indent)
	}
	if c.Output.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Output.Limit)
	}
	return nil
}

// TypeName returns the schema.org type name to match for a requested name,
// applying aliases first and then CamelCase normalisation when enabled.
func (c *Config) TypeName(name string) string {
	if mapped, exists := c.Types.Aliases[name]; exists {
		return mapped
	}

	if c.Types.Camelize {
		return strcase.ToCamel(name)
	}

	return name
}

// TypeNames resolves every name in the type filter.
func (c *Config) TypeNames() []string {
	names := make([]string, 0, len(c.Types.Filter))
	for _, name := range c.Types.Filter {
		names = append(names, c.TypeName(name))
	}
	return names
}

// CLIOverrides carries command-line values. Zero values leave the file
// configuration untouched.
type CLIOverrides struct {
	Mode   string
	Types  []string
	Format string
	Select string
	Limit  int
	Indent *int
	Debug  bool
}

// LoadConfigWithCLI loads config with CLI argument precedence
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli.Mode != "" {
		cfg.Input.Mode = cli.Mode
	}
	if len(cli.Types) > 0 {
		cfg.Types.Filter = slices.Clone(cli.Types)
	}
	if cli.Format != "" {
		cfg.Output.Format = cli.Format
	}
	if cli.Select != "" {
		cfg.Output.Select = cli.Select
	}
	if cli.Limit != 0 {
		cfg.Output.Limit = cli.Limit
	}
	if cli.Indent != nil {
		cfg.Output.Indent = *cli.Indent
	}
	// A debug flag can only switch debugging on.
	if cli.Debug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
