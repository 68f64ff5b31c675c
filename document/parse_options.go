package document

import (
	"fmt"
	"io"

	"github.com/erraggy/docdiff/docerrors"
	"github.com/erraggy/docdiff/internal/options"
)

// Option configures a parse operation
type Option func(*parseConfig) error

type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	schema        Schema
	normalizeForm string
	maxFileSize   int64
	logger        Logger

	sourceName *string
}

// ParseWithOptions parses a document using functional options.
//
// Example:
//
//	result, err := document.ParseWithOptions(
//	    document.WithFilePath("v2.json"),
//	    document.WithNormalizeText("NFC"),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("document: invalid options: %w", err)
	}

	p := &Parser{
		Schema:        cfg.schema,
		NormalizeForm: cfg.normalizeForm,
		MaxFileSize:   cfg.maxFileSize,
		Logger:        cfg.logger,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, err = p.ParseBytes(cfg.bytes)
	default:
		return nil, fmt.Errorf("document: no input source specified")
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"input",
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the document from a file
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader reads the document from r
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &docerrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes decodes the document from data
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &docerrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSchema validates the parsed document when s implements Validator.
func WithSchema(s Schema) Option {
	return func(cfg *parseConfig) error {
		cfg.schema = s
		return nil
	}
}

// WithNormalizeText applies a Unicode normalization form (NFC, NFD, NFKC,
// NFKD) to every text leaf after decoding.
func WithNormalizeText(form string) Option {
	return func(cfg *parseConfig) error {
		if _, ok := lookupForm(form); !ok {
			return &docerrors.ConfigError{
				Option:  "WithNormalizeText",
				Value:   form,
				Message: "must be one of NFC, NFD, NFKC, NFKD",
			}
		}
		cfg.normalizeForm = form
		return nil
	}
}

// WithMaxFileSize sets the largest accepted input in bytes.
// A value of 0 means use the default (10MB).
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &docerrors.ConfigError{Option: "WithMaxFileSize", Value: size, Message: "cannot be negative"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithLogger sets the logger for the parse operation.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides SourcePath in the result, e.g. to name a
// document read from stdin.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
