// Package document provides the rich-text document model shared by the
// differ, walker, and renderer packages.
//
// A document is a tree of [Node] values in the ProseMirror/TipTap shape.
// Element nodes (doc, paragraph, heading, image, ...) carry attributes and
// children; text leaves carry a string and an ordered list of marks (bold,
// link, ...). The node kind is derived from the type name when a document is
// decoded, so code can switch on [Kind] instead of comparing strings.
//
// # Parsing
//
// JSON and YAML are both accepted; the format is detected from the file
// extension or the content:
//
//	result, err := document.ParseWithOptions(
//		document.WithFilePath("v1.json"),
//		document.WithSchema(document.DefaultSchema().Strict()),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stats.TextLeafCount, "text leaves")
//
// Options for ParseWithOptions:
//
//   - WithFilePath, WithReader, WithBytes: the input (exactly one)
//   - WithSourceName: the SourcePath reported for reader and byte input
//   - WithSchema: validate the parsed tree against a Registry
//   - WithNormalizeText: apply NFC, NFD, NFKC, or NFKD to every text leaf
//   - WithMaxFileSize: reject larger inputs (default DefaultMaxFileSize)
//   - WithLogger: debug output
//
// # Equality
//
// [Equal] compares two subtrees structurally: type, attributes, marks in
// order, text, and children. Numeric attributes compare by value, so a
// heading level decoded from JSON equals the same level decoded from YAML.
//
// # Schema
//
// [Schema] is the narrow interface the differ uses to construct text leaves
// and marks. [Registry] implements it; [DefaultSchema] knows the ProseMirror
// basic schema, the TipTap names for the same types, and the diff mark.
//
// # Diff marks
//
// The differ annotates changed leaves with a mark of type [DiffMarkType]
// whose "type" attribute is [DiffInserted] or [DiffDeleted]:
//
//	{"type": "diffMark", "attrs": {"type": "inserted"}}
//
// [DiffMarkOf] reads it back.
package document
