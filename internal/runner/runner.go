package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jacoelho/pick/internal/config"
	"github.com/jacoelho/pick/internal/exit"
	"github.com/jacoelho/pick/internal/formatter"
	"github.com/jacoelho/pick/internal/formatter/jsonout"
	"github.com/jacoelho/pick/internal/formatter/stdout"
	"github.com/jacoelho/pick/internal/formatter/yamlout"
	"github.com/jacoelho/pick/internal/pick"
	"github.com/jacoelho/pick/internal/ratelimit"
	"github.com/jacoelho/pick/internal/results"
	"github.com/jacoelho/pick/internal/value"
)

// Runner reads documents and runs the configured paths against each one.
type Runner struct {
	config      *config.Config
	paths       []*pick.Path
	queries     [][]string
	options     []pick.Option
	rateLimiter *ratelimit.Limiter
	formatter   formatter.Formatter
	logger      *slog.Logger
	runID       string

	stdin  io.Reader
	stderr io.Writer
}

// New creates a new Runner with the provided configuration, wired to the
// process standard streams.
// If creation fails, returns nil runner and exit result.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	return NewWithIO(cfg, os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO creates a Runner reading "-" from in, writing query output to
// out and logs and the summary to errOut.
func NewWithIO(cfg *config.Config, in io.Reader, out, errOut io.Writer) (*Runner, *exit.Result) {
	if cfg == nil {
		return nil, exit.Errorf("Error creating runner: missing configuration\n")
	}

	runID := uuid.NewString()
	options := cfg.PickOptions()

	r := &Runner{
		config:      cfg,
		options:     options,
		rateLimiter: ratelimit.New(cfg.RateLimit),
		formatter:   newFormatter(cfg, out),
		logger:      newLogger(errOut, cfg.Debug).With("run", runID),
		runID:       runID,
		stdin:       in,
		stderr:      errOut,
	}

	if cfg.Compact {
		r.queries = make([][]string, len(cfg.Paths))
		for i, p := range cfg.Paths {
			r.queries[i] = pick.Tokenize(p, cfg.Delimiter)
		}
	} else {
		r.paths = make([]*pick.Path, len(cfg.Paths))
		for i, p := range cfg.Paths {
			r.paths[i] = pick.Compile(p, options...)
		}
	}

	return r, nil
}

func newFormatter(cfg *config.Config, out io.Writer) formatter.Formatter {
	switch cfg.Format {
	case config.FormatYAML:
		return yamlout.NewWithWriter(out)
	case config.FormatText:
		return stdout.NewWithWriter(out, formatter.UseColor(cfg.Color, out))
	default:
		return jsonout.NewWithWriter(out)
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Run processes every input source and returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	summary := results.NewSummary(r.runID)
	start := time.Now()

	r.logger.Debug("starting", "sources", len(r.config.Files), "paths", len(r.config.Paths), "compact", r.config.Compact)

	for _, source := range r.config.Files {
		if err := ctx.Err(); err != nil {
			r.logger.Error("interrupted", "documents", summary.Documents)
			return exit.CodeFailure
		}

		summary.AddSource()
		if err := r.processSource(ctx, source, summary); err != nil {
			if ctx.Err() != nil {
				r.logger.Error("interrupted", "documents", summary.Documents)
				return exit.CodeFailure
			}
			summary.AddDecodeError()
			r.logger.Error("failed to process source", "source", source, "error", err)
		}
	}

	summary.SetTotalDuration(time.Since(start))

	if r.config.Stats {
		if err := summary.FormatText(r.stderr); err != nil {
			r.logger.Error("failed to write summary", "error", err)
		}
	}

	return r.exitCode(summary)
}

func (r *Runner) exitCode(s *results.Summary) int {
	switch {
	case s.DecodeErrors > 0:
		return exit.CodeFailure
	case s.Failed > 0:
		return exit.CodeUsage
	case r.config.ExitStatus && !s.AnyMatched():
		return exit.CodeNoMatch
	}
	return exit.CodeOK
}

// processSource decodes one input and queries each document in it.
func (r *Runner) processSource(ctx context.Context, source string, summary *results.Summary) error {
	in, closeFn, err := r.open(source)
	if err != nil {
		return err
	}
	defer closeFn()

	index := 0
	for doc, err := range documents(r.config.InputFormat(source), in) {
		if err != nil {
			return fmt.Errorf("document %d of %s: %w", index, source, err)
		}

		if err := r.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		result, err := r.processDocument(source, index, doc)
		if err != nil {
			return err
		}
		summary.Add(result)
		index++
	}

	r.logger.Debug("source done", "source", source, "documents", index)
	return nil
}

func (r *Runner) open(source string) (io.Reader, func(), error) {
	if source == config.Stdin {
		return r.stdin, func() {}, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", source, err)
	}
	return f, func() { f.Close() }, nil
}

// documents yields the documents of in decoded as format.
func documents(format string, in io.Reader) iter.Seq2[*value.Value, error] {
	switch format {
	case config.InputNDJSON:
		return value.DecodeJSONStream(in)
	case config.InputYAML:
		return func(yield func(*value.Value, error) bool) {
			data, err := io.ReadAll(in)
			if err != nil {
				yield(nil, err)
				return
			}
			docs, err := value.DecodeYAML(data)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, doc := range docs {
				if !yield(doc, nil) {
					return
				}
			}
		}
	default:
		return func(yield func(*value.Value, error) bool) {
			yield(value.DecodeJSON(in))
		}
	}
}

func (r *Runner) processDocument(source string, index int, root *value.Value) (results.DocumentResult, error) {
	builder := results.NewDocumentResultBuilder(source, index)
	doc := formatter.Document{Source: source, Index: index}

	if r.config.Compact {
		found, err := pick.BulkSearch(root, r.queries, r.options...)
		failed := r.logQueryErrors(source, index, err)

		doc.Compact = true
		doc.Values = found
		for range found {
			builder.Matched()
		}
		for range failed {
			builder.Failed()
		}
		for range len(r.queries) - len(found) - failed {
			builder.Missed()
		}
	} else {
		doc.Results = pick.SearchAll(root, r.paths, r.options...)
		for _, res := range doc.Results {
			switch {
			case res.Err != nil:
				r.logger.Warn("malformed path", "source", source, "document", index, "path", res.Path, "error", res.Err)
				builder.Failed()
			case res.Found():
				builder.Matched()
			default:
				r.logger.Debug("no match", "source", source, "document", index, "path", res.Path)
				builder.Missed()
			}
		}
	}

	if err := r.formatter.Format(doc); err != nil {
		return results.DocumentResult{}, fmt.Errorf("failed to write output: %w", err)
	}
	return builder.Build(), nil
}

// logQueryErrors reports each malformed query of a batch and returns how
// many there were.
func (r *Runner) logQueryErrors(source string, index int, err error) int {
	if err == nil {
		return 0
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		var qe *pick.QueryError
		if errors.As(e, &qe) {
			r.logger.Warn("malformed path", "source", source, "document", index, "path", qe.Path, "error", qe.Err)
			continue
		}
		r.logger.Warn("query failed", "source", source, "document", index, "error", e)
	}
	return len(errs)
}
