package differ

import (
	"fmt"
	"time"

	"github.com/erraggy/docdiff/docerrors"
	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/walker"
)

// Stats counts the leaves of a merged document by diff mark.
type Stats struct {
	// Inserted counts leaves marked inserted
	Inserted int `json:"inserted"`
	// Deleted counts leaves marked deleted
	Deleted int `json:"deleted"`
	// Unchanged counts leaves without a diff mark
	Unchanged int `json:"unchanged"`
}

// DiffResult contains the merged document and a summary of the comparison
type DiffResult struct {
	// Document is the merged tree: unchanged content once, removed content
	// marked deleted, added content marked inserted
	Document *document.Node
	// Stats counts merged leaves by diff mark
	Stats Stats
	// Changes lists every marked leaf in document order
	Changes []*walker.Change
	// HasChanges is true if any leaf carries a diff mark
	HasChanges bool
	// SourcePath is where the old document came from
	SourcePath string
	// SourceStats describes the old document
	SourceStats document.Stats
	// SourceSize is the size of the old document in bytes
	SourceSize int64
	// TargetPath is where the new document came from
	TargetPath string
	// TargetStats describes the new document
	TargetStats document.Stats
	// TargetSize is the size of the new document in bytes
	TargetSize int64
}

// Differ compares document trees. A Differ holds only configuration and is
// safe for concurrent use.
type Differ struct {
	// Schema constructs text leaves and marks for DiffParsed.
	// Defaults to document.DefaultSchema() when nil.
	Schema document.Schema
	// SemanticCleanup merges character-level edits into word-sized ones
	// before they are emitted. Default: true
	SemanticCleanup bool
	// TextDiffTimeout bounds the time spent diffing one pair of text runs.
	// When it expires the text diff degrades to a coarser but still valid
	// result. Zero means no limit, which keeps output deterministic.
	TextDiffTimeout time.Duration
	// Logger receives debug and info output. Default: no logging
	Logger document.Logger
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{
		SemanticCleanup: true,
	}
}

func (d *Differ) log() document.Logger {
	if d.Logger == nil {
		return document.NopLogger{}
	}
	return d.Logger
}

func (d *Differ) schema() document.Schema {
	if d.Schema == nil {
		return document.DefaultSchema()
	}
	return d.Schema
}

// Diff merges two documents with default settings. The roots must have the
// same type; otherwise a *docerrors.TypeMismatchError is returned.
func Diff(schema document.Schema, oldDoc, newDoc *document.Node) (*document.Node, error) {
	return New().Diff(schema, oldDoc, newDoc)
}

// PatchDocumentNode merges two nodes of the same type with default settings.
// The result has the old node's type, attributes, and marks, and merged
// children.
func PatchDocumentNode(schema document.Schema, oldNode, newNode *document.Node) (*document.Node, error) {
	return New().PatchDocumentNode(schema, oldNode, newNode)
}

// Diff merges two documents. Neither input is modified; unchanged subtrees
// of the old document are shared by the result.
func (d *Differ) Diff(schema document.Schema, oldDoc, newDoc *document.Node) (*document.Node, error) {
	return d.PatchDocumentNode(schema, oldDoc, newDoc)
}

// PatchDocumentNode merges two nodes of the same type.
func (d *Differ) PatchDocumentNode(schema document.Schema, oldNode, newNode *document.Node) (*document.Node, error) {
	if oldNode == nil || newNode == nil {
		return nil, &docerrors.ConfigError{Option: "document", Message: "old and new nodes are required"}
	}
	if oldNode.Type != newNode.Type {
		return nil, &docerrors.TypeMismatchError{Path: "$", OldType: oldNode.Type, NewType: newNode.Type}
	}
	if oldNode.Kind == document.KindText {
		return nil, &docerrors.ConfigError{Option: "document", Value: oldNode.Type, Message: "root must be an element node"}
	}

	p, err := d.newPatcher(schema)
	if err != nil {
		return nil, err
	}
	if !document.EqualAttrs(oldNode.Attrs, newNode.Attrs) {
		p.log.Warn("root attributes differ; keeping the old attributes", "type", oldNode.Type)
	}
	return p.patchNode(oldNode, newNode)
}

// DiffParsed merges two parsed documents and summarizes the result.
func (d *Differ) DiffParsed(source, target document.ParseResult) (*DiffResult, error) {
	merged, err := d.Diff(d.schema(), source.Document, target.Document)
	if err != nil {
		return nil, fmt.Errorf("differ: %w", err)
	}

	changes, err := walker.CollectChanges(merged)
	if err != nil {
		return nil, fmt.Errorf("differ: collecting changes: %w", err)
	}

	result := &DiffResult{
		Document: merged,
		Stats: Stats{
			Inserted:  len(changes.Inserted),
			Deleted:   len(changes.Deleted),
			Unchanged: changes.Unchanged,
		},
		Changes:     changes.All,
		HasChanges:  changes.HasChanges(),
		SourcePath:  source.SourcePath,
		SourceStats: source.Stats,
		SourceSize:  source.SourceSize,
		TargetPath:  target.SourcePath,
		TargetStats: target.Stats,
		TargetSize:  target.SourceSize,
	}

	d.log().Info("diff complete",
		"source", result.SourcePath,
		"target", result.TargetPath,
		"inserted", result.Stats.Inserted,
		"deleted", result.Stats.Deleted,
		"unchanged", result.Stats.Unchanged,
	)
	return result, nil
}
