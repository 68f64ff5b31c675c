// Package testutil provides test utilities and document fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/docdiff/document"
)

// Doc creates a doc root node.
func Doc(content ...*document.Node) *document.Node {
	return document.NewElement("doc", nil, content...)
}

// Paragraph creates a paragraph node.
func Paragraph(content ...*document.Node) *document.Node {
	return document.NewElement("paragraph", nil, content...)
}

// Heading creates a heading node of the given level.
func Heading(level int, content ...*document.Node) *document.Node {
	return document.NewElement("heading", document.Attrs{"level": level}, content...)
}

// Text creates a text leaf.
func Text(text string, marks ...document.Mark) *document.Node {
	return document.NewText(text, marks...)
}

// Image creates a childless image node.
func Image(src string) *document.Node {
	return document.NewElement("image", document.Attrs{"src": src})
}

// Bold returns a bold mark.
func Bold() document.Mark {
	return document.Mark{Type: "bold"}
}

// Italic returns an italic mark.
func Italic() document.Mark {
	return document.Mark{Type: "italic"}
}

// Link returns a link mark pointing at href.
func Link(href string) document.Mark {
	return document.Mark{Type: "link", Attrs: document.Attrs{"href": href}}
}

// Inserted returns the diff mark for inserted content.
func Inserted() document.Mark {
	return document.Mark{Type: document.DiffMarkType, Attrs: document.Attrs{"type": "inserted"}}
}

// Deleted returns the diff mark for deleted content.
func Deleted() document.Mark {
	return document.Mark{Type: document.DiffMarkType, Attrs: document.Attrs{"type": "deleted"}}
}

// NewSimpleDocument creates a two-paragraph document for testing.
func NewSimpleDocument() *document.Node {
	return Doc(
		Paragraph(Text("Hello world")),
		Paragraph(Text("Second paragraph")),
	)
}

// NewDetailedDocument creates a document with a heading, marked text, an
// image, and a list.
func NewDetailedDocument() *document.Node {
	return Doc(
		Heading(1, Text("Release notes")),
		Paragraph(
			Text("This release is "),
			Text("faster", Bold()),
			Text(" and "),
			Text("documented", Link("https://example.com/docs")),
			Text("."),
		),
		Paragraph(Image("diagram.png")),
		document.NewElement("bulletList", nil,
			document.NewElement("listItem", nil, Paragraph(Text("First item"))),
			document.NewElement("listItem", nil, Paragraph(Text("Second item"))),
		),
	)
}

// WriteTempYAML encodes a document as YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc *document.Node) string {
	t.Helper()
	return writeTemp(t, doc, document.SourceFormatYAML, "test.yaml")
}

// WriteTempJSON encodes a document as JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc *document.Node) string {
	t.Helper()
	return writeTemp(t, doc, document.SourceFormatJSON, "test.json")
}

func writeTemp(t *testing.T, doc *document.Node, format document.SourceFormat, name string) string {
	t.Helper()

	data, err := document.Encode(doc, format)
	if err != nil {
		t.Fatalf("Failed to encode document as %s: %v", format, err)
	}

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary %s file: %v", format, err)
	}

	return tmpFile
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
