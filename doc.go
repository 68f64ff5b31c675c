// Package docdiff compares two versions of a rich-text document tree and
// produces a single merged document in which changes are annotated instead of
// applied.
//
// Documents use the ProseMirror/TipTap JSON shape:
//
//	{"type": "paragraph", "attrs": {...}, "marks": [...], "text": "...", "content": [...]}
//
// Unchanged content is carried through untouched. Content that exists only in
// the old document is kept and marked deleted; content that exists only in the
// new document is added and marked inserted. Markers are ordinary marks
// appended to each affected leaf:
//
//	{"type": "diffMark", "attrs": {"type": "inserted"}}
//
// # Packages
//
//   - document: node model, equality, JSON/YAML codec, schema registry
//   - differ: the diff engine (affix trimming, run matching, text diffing)
//   - walker: depth-first traversal and change collection
//   - renderer: plain text, HTML, and terminal views of a merged document
//   - docerrors: structured error types for errors.Is / errors.As
//
// # Quick Start
//
//	import (
//		"github.com/erraggy/docdiff/differ"
//		"github.com/erraggy/docdiff/document"
//	)
//
//	merged, err := differ.Diff(document.DefaultSchema(), oldDoc, newDoc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or from files, with functional options:
//
//	result, err := differ.DiffWithOptions(
//		differ.WithSourceFilePath("v1.json"),
//		differ.WithTargetFilePath("v2.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d inserted, %d deleted\n", result.Stats.Inserted, result.Stats.Deleted)
//
// # Command Line
//
// The docdiff command wraps the library:
//
//	docdiff diff old.json new.json
//	docdiff diff --format json old.json new.json > merged.json
//	docdiff render --format html merged.json
//	docdiff mcp
package docdiff
