package differ

import (
	"fmt"
	"time"

	"github.com/erraggy/docdiff/docerrors"
	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/internal/options"
)

// Option is a function that configures a diff operation
type Option func(*diffConfig) error

// diffConfig holds configuration for a diff operation
type diffConfig struct {
	// Input sources (exactly one source and one target must be set)
	sourceFilePath *string
	sourceParsed   *document.ParseResult
	targetFilePath *string
	targetParsed   *document.ParseResult

	schema          document.Schema
	semanticCleanup bool
	textDiffTimeout time.Duration
	normalizeForm   string
	logger          document.Logger
}

// DiffWithOptions compares two documents using functional options.
//
// Example:
//
//	result, err := differ.DiffWithOptions(
//	    differ.WithSourceFilePath("v1.json"),
//	    differ.WithTargetFilePath("v2.json"),
//	)
func DiffWithOptions(opts ...Option) (*DiffResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	d := &Differ{
		Schema:          cfg.schema,
		SemanticCleanup: cfg.semanticCleanup,
		TextDiffTimeout: cfg.textDiffTimeout,
		Logger:          cfg.logger,
	}

	source, err := cfg.load(cfg.sourceFilePath, cfg.sourceParsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	target, err := cfg.load(cfg.targetFilePath, cfg.targetParsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target: %w", err)
	}

	return d.DiffParsed(*source, *target)
}

func (cfg *diffConfig) load(path *string, parsed *document.ParseResult) (*document.ParseResult, error) {
	if path == nil {
		if parsed.Document == nil {
			return nil, &docerrors.ConfigError{Option: "parsed", Message: "parse result has no document"}
		}
		return parsed, nil
	}
	parseOpts := []document.Option{
		document.WithFilePath(*path),
		document.WithSchema(cfg.schema),
	}
	if cfg.normalizeForm != "" {
		parseOpts = append(parseOpts, document.WithNormalizeText(cfg.normalizeForm))
	}
	if cfg.logger != nil {
		parseOpts = append(parseOpts, document.WithLogger(cfg.logger))
	}
	return document.ParseWithOptions(parseOpts...)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*diffConfig, error) {
	cfg := &diffConfig{
		semanticCleanup: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"source",
		"must specify a source (use WithSourceFilePath or WithSourceParsed)",
		"must specify exactly one source",
		cfg.sourceFilePath != nil, cfg.sourceParsed != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateSingleInputSource(
		"target",
		"must specify a target (use WithTargetFilePath or WithTargetParsed)",
		"must specify exactly one target",
		cfg.targetFilePath != nil, cfg.targetParsed != nil,
	); err != nil {
		return nil, err
	}

	if cfg.schema == nil {
		cfg.schema = document.DefaultSchema()
	}
	return cfg, nil
}

// WithSourceFilePath specifies a JSON or YAML file as the old document
func WithSourceFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.sourceFilePath = &path
		return nil
	}
}

// WithSourceParsed specifies a parsed ParseResult as the old document
func WithSourceParsed(result document.ParseResult) Option {
	return func(cfg *diffConfig) error {
		cfg.sourceParsed = &result
		return nil
	}
}

// WithTargetFilePath specifies a JSON or YAML file as the new document
func WithTargetFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.targetFilePath = &path
		return nil
	}
}

// WithTargetParsed specifies a parsed ParseResult as the new document
func WithTargetParsed(result document.ParseResult) Option {
	return func(cfg *diffConfig) error {
		cfg.targetParsed = &result
		return nil
	}
}

// WithSchema sets the schema used to build the merged document and to
// validate documents read from files.
// Default: document.DefaultSchema()
func WithSchema(s document.Schema) Option {
	return func(cfg *diffConfig) error {
		if s == nil {
			return &docerrors.ConfigError{Option: "WithSchema", Message: "schema cannot be nil"}
		}
		cfg.schema = s
		return nil
	}
}

// WithSemanticCleanup enables or disables merging of character-level edits
// into word-sized ones.
// Default: true
func WithSemanticCleanup(enabled bool) Option {
	return func(cfg *diffConfig) error {
		cfg.semanticCleanup = enabled
		return nil
	}
}

// WithTextDiffTimeout bounds the time spent on one pair of text runs.
// Default: 0 (no limit)
func WithTextDiffTimeout(timeout time.Duration) Option {
	return func(cfg *diffConfig) error {
		if timeout < 0 {
			return &docerrors.ConfigError{Option: "WithTextDiffTimeout", Value: timeout, Message: "cannot be negative"}
		}
		cfg.textDiffTimeout = timeout
		return nil
	}
}

// WithNormalizeText applies a Unicode normalization form to documents read
// from files, so differently composed accents do not show up as edits.
func WithNormalizeText(form string) Option {
	return func(cfg *diffConfig) error {
		if !document.IsNormalizationForm(form) {
			return &docerrors.ConfigError{Option: "WithNormalizeText", Value: form, Message: "must be one of NFC, NFD, NFKC, NFKD"}
		}
		cfg.normalizeForm = form
		return nil
	}
}

// WithLogger sets the logger for the diff and for parsing its inputs.
func WithLogger(l document.Logger) Option {
	return func(cfg *diffConfig) error {
		cfg.logger = l
		return nil
	}
}
