/*
Package differ compares two versions of a document tree and merges them into
one tree in which every change is annotated with a diff mark.

# Overview

The merged document contains unchanged content once, content present only in
the old document marked deleted, and content present only in the new document
marked inserted. Diff marks are ordinary marks appended to leaves:

	{"type": "diffMark", "attrs": {"type": "inserted"}}

Containers are never marked; when a whole subtree is added or removed, every
leaf below it carries the mark. Neither input is modified, and unchanged
subtrees are shared with the old document.

# Algorithm

Children are grouped into units: a maximal run of adjacent text leaves, or a
single non-text node. At each level the differ:

 1. strips the common prefix and then the common suffix of equal units
 2. finds the longest stretch of equal units in the remainder and recurses on
    the regions before and after it
 3. when nothing matches, pairs units from both ends; two text runs are diffed
    character by character, two elements of the same type, attributes, and
    marks are merged recursively, and anything else becomes a deletion
    followed by an insertion

Text runs are diffed with diff-match-patch. Each resulting segment is split at
the leaf boundaries of its source run so every output leaf keeps the marks of
the leaf it came from. Text that is unchanged but formatted differently is
emitted twice: deleted with the old marks, then inserted with the new marks.

# Usage

Package-level functions use default settings:

	merged, err := differ.Diff(document.DefaultSchema(), oldDoc, newDoc)

A Differ carries configuration and can be reused:

	d := differ.New()
	d.SemanticCleanup = false
	d.Logger = document.NewSlogAdapter(slog.Default())
	merged, err := d.Diff(schema, oldDoc, newDoc)

Files are compared with functional options, which also summarize the result:

	result, err := differ.DiffWithOptions(
		differ.WithSourceFilePath("v1.json"),
		differ.WithTargetFilePath("v2.yaml"),
		differ.WithNormalizeText("NFC"),
	)
	for _, change := range result.Changes {
		fmt.Println(change)
	}

# Options

  - WithSourceFilePath, WithSourceParsed: the old document (exactly one)
  - WithTargetFilePath, WithTargetParsed: the new document (exactly one)
  - WithSchema: the schema for parsing and for building the merged tree
  - WithSemanticCleanup: merge character edits into word-sized ones (default true)
  - WithTextDiffTimeout: time limit per pair of text runs (default none)
  - WithNormalizeText: Unicode normalization applied when reading files
  - WithLogger: debug and info output

# Errors

Roots of different types yield a *docerrors.TypeMismatchError. A schema that
cannot build the diff marks or a marked text leaf yields its
*docerrors.SchemaError. Invalid options yield a *docerrors.ConfigError.
*/
package differ
