package renderer

import (
	"strings"

	"github.com/erraggy/docdiff/document"
)

var defaultSchema = document.DefaultSchema()

// isInline reports whether n sits inside a textblock. Unknown types are
// inline when they have no children.
func isInline(n *document.Node) bool {
	if n.Kind == document.KindText {
		return true
	}
	if spec, ok := defaultSchema.NodeSpec(n.Type); ok {
		return spec.Inline
	}
	return len(n.Content) == 0
}

func isHardBreak(n *document.Node) bool {
	return n.Type == "hardBreak" || n.Type == "hard_break"
}

func isHorizontalRule(n *document.Node) bool {
	return n.Type == "horizontalRule" || n.Type == "horizontal_rule"
}

// emitFunc writes one span of text that shares a diff state. marked is false
// for unchanged text.
type emitFunc func(sb *strings.Builder, t document.DiffType, marked bool, text string)

// spanWriter turns a document into lines of text, one per textblock.
// Adjacent leaves with the same diff state are joined into one span before
// they are emitted.
type spanWriter struct {
	sb     strings.Builder
	emit   emitFunc
	span   strings.Builder
	t      document.DiffType
	marked bool
}

func newSpanWriter(emit emitFunc) *spanWriter {
	return &spanWriter{emit: emit}
}

func (w *spanWriter) write(t document.DiffType, marked bool, text string) {
	if text == "" {
		return
	}
	if w.span.Len() > 0 && (marked != w.marked || t != w.t) {
		w.flush()
	}
	w.t, w.marked = t, marked
	w.span.WriteString(text)
}

func (w *spanWriter) flush() {
	if w.span.Len() == 0 {
		return
	}
	w.emit(&w.sb, w.t, w.marked, w.span.String())
	w.span.Reset()
}

func (w *spanWriter) newline() {
	w.flush()
	w.sb.WriteByte('\n')
}

func (w *spanWriter) render(n *document.Node) {
	t, marked := document.DiffMarkOf(n)
	switch {
	case n.Kind == document.KindText:
		w.write(t, marked, n.Text)
	case isHardBreak(n):
		w.newline()
	case isHorizontalRule(n):
		w.flush()
		w.write(t, marked, "---")
		w.newline()
	case n.IsLeaf() && isInline(n):
		w.write(t, marked, leafLabel(n))
	default:
		textblock := false
		for _, c := range n.Content {
			if isInline(c) {
				textblock = true
			}
			w.render(c)
		}
		if textblock {
			w.newline()
		}
	}
}

func (w *spanWriter) String() string {
	w.flush()
	return w.sb.String()
}

// leafLabel describes a non-text inline leaf in plain text.
func leafLabel(n *document.Node) string {
	if src, ok := n.Attrs["src"].(string); ok {
		return "[" + n.Type + ": " + src + "]"
	}
	return "[" + n.Type + "]"
}

func emitPlain(sb *strings.Builder, _ document.DiffType, _ bool, text string) {
	sb.WriteString(text)
}

// emitMarkers wraps changes in word-diff markers: [-deleted-] and
// {+inserted+}.
func emitMarkers(sb *strings.Builder, t document.DiffType, marked bool, text string) {
	switch {
	case !marked:
		sb.WriteString(text)
	case t == document.DiffDeleted:
		sb.WriteString("[-")
		sb.WriteString(text)
		sb.WriteString("-]")
	default:
		sb.WriteString("{+")
		sb.WriteString(text)
		sb.WriteString("+}")
	}
}

// Text renders a document as plain text, one line per textblock.
//
// ViewOld and ViewNew render one side of a merged document with no markup.
// ViewMerged renders both sides, wrapping deleted text in [-...-] and
// inserted text in {+...+}. Non-text leaves such as images are shown as
// "[image: src]".
func Text(root *document.Node, view View) string {
	if root == nil {
		return ""
	}
	emit := emitPlain
	if view == ViewMerged {
		emit = emitMarkers
	} else {
		root = Project(root, view)
	}
	w := newSpanWriter(emit)
	w.render(root)
	return w.String()
}
