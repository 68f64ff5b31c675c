package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/docdiff/docerrors"
)

// DefaultMaxFileSize is the largest document accepted when no limit is configured.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// ParseResult holds a decoded document and information about its source.
type ParseResult struct {
	// Document is the decoded root node
	Document *Node
	// SourcePath is the file the document was read from, or a placeholder
	// ("ParseReader", "ParseBytes") for in-memory input
	SourcePath string
	// SourceFormat is JSON or YAML
	SourceFormat SourceFormat
	// SourceSize is the size of the input in bytes
	SourceSize int64
	// Stats summarizes the decoded tree
	Stats Stats
}

// Parser decodes documents. The zero value is usable: no schema validation,
// no text normalization, the default size limit, and no logging.
type Parser struct {
	// Schema, when it implements Validator, validates every parsed document
	Schema Schema
	// NormalizeForm is a Unicode normalization form ("NFC", "NFD", "NFKC",
	// "NFKD") applied to every text leaf; empty disables normalization
	NormalizeForm string
	// MaxFileSize is the largest input accepted in bytes; 0 means DefaultMaxFileSize
	MaxFileSize int64
	// Logger receives debug output; nil means no logging
	Logger Logger
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) log() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// Parse reads and decodes the document at path. The format is taken from
// the file extension, falling back to the content.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}
	if info.Size() > p.maxFileSize() {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       info.Size(),
			Message:      path,
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}
	return p.parse(data, path, detectFormatFromPath(path))
}

// ParseReader reads the whole reader and decodes it.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("document: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        limit,
			Actual:       int64(len(data)),
			Message:      "reader exceeds the size limit",
		}
	}
	return p.parse(data, "ParseReader", SourceFormatUnknown)
}

// ParseBytes decodes an in-memory document.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if int64(len(data)) > p.maxFileSize() {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        p.maxFileSize(),
			Actual:       int64(len(data)),
		}
	}
	return p.parse(data, "ParseBytes", SourceFormatUnknown)
}

func (p *Parser) parse(data []byte, sourcePath string, format SourceFormat) (*ParseResult, error) {
	var form norm.Form
	if p.NormalizeForm != "" {
		f, ok := lookupForm(p.NormalizeForm)
		if !ok {
			return nil, &docerrors.ConfigError{
				Option:  "NormalizeForm",
				Value:   p.NormalizeForm,
				Message: "must be one of NFC, NFD, NFKC, NFKD",
			}
		}
		form = f
	}

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	root, err := Decode(data, format)
	if err != nil {
		return nil, withSourcePath(err, sourcePath)
	}

	if p.NormalizeForm != "" {
		normalizeText(root, form)
	}

	if v, ok := p.Schema.(Validator); ok {
		if err := v.Validate(root); err != nil {
			return nil, fmt.Errorf("document: %s: %w", sourcePath, err)
		}
	}

	result := &ParseResult{
		Document:     root,
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
		Stats:        ComputeStats(root),
	}
	p.log().Debug("parsed document",
		"path", sourcePath,
		"format", string(format),
		"bytes", result.SourceSize,
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.MaxDepth,
	)
	return result, nil
}

// withSourcePath fills in the path of a parse error that was raised before
// the path was known.
func withSourcePath(err error, path string) error {
	var pe *docerrors.ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		copied := *pe
		copied.Path = path
		return &copied
	}
	return err
}

// Parse decodes a JSON or YAML document held in memory.
func Parse(data []byte) (*Node, error) {
	return Decode(data, SourceFormatUnknown)
}

// detectFormatFromPath detects the source format from a file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// FormatBytes formats a byte count using binary units (KiB, MiB, ...).
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
