package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jacoelho/pick/internal/exit"
	"github.com/jacoelho/pick/internal/formatter"
	"github.com/jacoelho/pick/internal/pick"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Input formats.
const (
	InputJSON   = "json"
	InputNDJSON = "ndjson"
	InputYAML   = "yaml"
)

// Stdin is the file name that reads from standard input.
const Stdin = "-"

var (
	ErrNoArguments = errors.New("no arguments provided")
	ErrNoPaths     = errors.New("no paths specified, use --path or --paths-file")
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrFormat      = errors.New("unknown output format")
	ErrInput       = errors.New("unknown input format")
	ErrColor       = errors.New("unknown color mode")
	ErrWorkers     = errors.New("workers must be at least 1")
)

// Config represents the complete configuration for the pick tool.
type Config struct {
	// Queries
	Paths     []string
	PathsFile string
	Delimiter string
	Compact   bool

	// Inputs; Stdin stands for standard input
	Files     []string
	Input     string // empty means per-file detection
	RateLimit float64

	// Execution and output
	Workers    int
	Format     string
	Color      string
	Stats      bool
	Debug      bool
	ExitStatus bool
}

// InputFormat returns the decoder to use for file: the --input flag when
// set, otherwise a guess from the file extension.
func (c *Config) InputFormat(file string) string {
	if c.Input != "" {
		return c.Input
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return InputYAML
	case ".ndjson", ".jsonl":
		return InputNDJSON
	}
	return InputJSON
}

// PickOptions returns the query options derived from the configuration.
func (c *Config) PickOptions() []pick.Option {
	return []pick.Option{
		pick.WithDelimiter(c.Delimiter),
		pick.WithWorkers(c.Workers),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}

	if !slices.Contains([]string{FormatJSON, FormatYAML, FormatText}, c.Format) {
		return fmt.Errorf("%w: %s", ErrFormat, c.Format)
	}
	if c.Input != "" && !slices.Contains([]string{InputJSON, InputNDJSON, InputYAML}, c.Input) {
		return fmt.Errorf("%w: %s", ErrInput, c.Input)
	}
	if !slices.Contains([]string{formatter.ColorAuto, formatter.ColorAlways, formatter.ColorNever}, c.Color) {
		return fmt.Errorf("%w: %s", ErrColor, c.Color)
	}
	if c.Workers < 1 {
		return ErrWorkers
	}

	for _, file := range c.Files {
		if file == Stdin {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}

	return nil
}

// pathsFlag implements flag.Value for repeated --path flags.
type pathsFlag []string

func (p *pathsFlag) String() string {
	return strings.Join(*p, ",")
}

func (p *pathsFlag) Set(value string) error {
	if value == "" {
		return ErrEmptyPath
	}
	*p = append(*p, value)
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		paths      pathsFlag
		pathsFile  = fs.String("paths-file", "", "File with one path per line")
		delimiter  = fs.String("delimiter", pick.DefaultDelimiter, "Path token delimiter")
		compact    = fs.Bool("compact", false, "Print only the values found")
		format     = fs.String("format", FormatJSON, "Output format: json, yaml or text")
		input      = fs.String("input", "", "Input format: json, ndjson or yaml")
		workers    = fs.Int("workers", 1, "Number of paths evaluated concurrently per document")
		rateLimit  = fs.Float64("rate-limit", 0, "Documents per second (0 for unlimited)")
		colorMode  = fs.String("color", formatter.ColorAuto, "Colour mode: auto, always or never")
		stats      = fs.Bool("stats", false, "Print a run summary to stderr")
		debug      = fs.Bool("debug", false, "Enable debug logging")
		exitStatus = fs.Bool("exit-status", false, "Exit with status 3 when no path matched")
	)

	fs.Var(&paths, "path", "Path to select (can be used multiple times)")
	fs.Var(&paths, "p", "Shorthand for --path")
	fs.StringVar(delimiter, "d", pick.DefaultDelimiter, "Shorthand for --delimiter")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Usagef("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	if *pathsFile != "" {
		filePaths, err := loadPathsFile(*pathsFile)
		if err != nil {
			return nil, exit.Usagef("Error: failed to load paths file: %v\n\n%s", err, Usage())
		}
		// file paths come first, command-line paths are appended
		paths = append(filePaths, paths...)
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{Stdin}
	}

	config := &Config{
		Paths:      paths,
		PathsFile:  *pathsFile,
		Delimiter:  *delimiter,
		Compact:    *compact,
		Files:      files,
		Input:      *input,
		RateLimit:  *rateLimit,
		Workers:    *workers,
		Format:     *format,
		Color:      *colorMode,
		Stats:      *stats,
		Debug:      *debug,
		ExitStatus: *exitStatus,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// loadPathsFile reads one path per line, kept verbatim apart from the line
// ending. It supports comments (lines starting with #) and blank lines.
func loadPathsFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var paths []string
	for line := range strings.Lines(string(data)) {
		// only the line ending is dropped
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		paths = append(paths, line)
	}

	return paths, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `pick - select values from JSON and YAML documents by path

Usage: pick [options] -p PATH [-p PATH ...] [file1] [file2] ...

Paths are split on the delimiter into tokens. Each token is a key, an
integer index (negative counts from the end), a slice start:end:step,
or * to match every entry.

Options:
  -p, --path PATH         Path to select (can be used multiple times)
  --paths-file FILE       File with one path per line (# comments allowed)
  -d, --delimiter SEP     Path token delimiter (default: /)
  --compact               Print only the values found
  --format FORMAT         Output format: json, yaml or text (default: json)
  --input FORMAT          Input format: json, ndjson or yaml (default: from file extension)
  --workers N             Number of paths evaluated concurrently per document (default: 1)
  --rate-limit N          Documents per second (0 for unlimited)
  --color MODE            Colour mode for text output: auto, always or never (default: auto)
  --stats                 Print a run summary to stderr
  --exit-status           Exit with status 3 when no path matched
  --debug                 Enable debug logging
  -h, --help              Show this help message

Examples:
  pick -p foo/bar doc.json                   # Select a nested key
  pick -p 'items/*/name' doc.json            # Names of every item
  pick -p 'items/::-1' doc.yaml              # Items in reverse order
  pick -d . -p a.b -p a.c doc.json           # Two paths with a custom delimiter
  cat events.ndjson | pick --input ndjson -p id --format text`
}
