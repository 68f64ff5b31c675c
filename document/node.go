package document

import (
	"strings"
)

// TextType is the node type name of text leaves.
const TextType = "text"

// Kind distinguishes text leaves from every other node.
// It is derived from the node type when a document is decoded.
type Kind uint8

const (
	// KindElement is any node that is not a text leaf (doc, paragraph, image, ...).
	KindElement Kind = iota
	// KindText is a text leaf carrying Text and Marks.
	KindText
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// KindOf returns the kind a node of the given type name has.
func KindOf(nodeType string) Kind {
	if nodeType == TextType {
		return KindText
	}
	return KindElement
}

// Attrs holds node or mark attributes. Values are JSON scalars, or
// nested arrays/objects of them.
type Attrs map[string]any

// Clone returns a deep copy of the attributes. A nil map stays nil.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Attrs:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Mark is an inline annotation on a text leaf (bold, link, diffMark, ...).
type Mark struct {
	Type  string `json:"type" yaml:"type"`
	Attrs Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Clone returns a deep copy of the mark.
func (m Mark) Clone() Mark {
	return Mark{Type: m.Type, Attrs: m.Attrs.Clone()}
}

// Node is one node of a document tree. Nodes never reference their parent,
// and the differ never mutates a node it was given: treat nodes handed to or
// returned from this module as immutable once built.
type Node struct {
	Kind    Kind
	Type    string
	Attrs   Attrs
	Marks   []Mark
	Content []*Node
	// Text is only meaningful for KindText nodes.
	Text string
}

// NewText creates a text leaf.
func NewText(text string, marks ...Mark) *Node {
	return &Node{
		Kind:  KindText,
		Type:  TextType,
		Text:  text,
		Marks: marks,
	}
}

// NewElement creates a non-text node.
func NewElement(nodeType string, attrs Attrs, content ...*Node) *Node {
	return &Node{
		Kind:    KindOf(nodeType),
		Type:    nodeType,
		Attrs:   attrs,
		Content: content,
	}
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Kind == KindText
}

// IsLeaf reports whether n has no children. Text leaves and childless
// elements such as images or hard breaks are leaves.
func (n *Node) IsLeaf() bool {
	return n != nil && len(n.Content) == 0
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:  n.Kind,
		Type:  n.Type,
		Attrs: n.Attrs.Clone(),
		Text:  n.Text,
	}
	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			out.Marks[i] = m.Clone()
		}
	}
	if n.Content != nil {
		out.Content = make([]*Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = c.Clone()
		}
	}
	return out
}

// WithContent returns a shallow copy of n whose children are content.
// Type, attributes, and marks are shared with n.
func (n *Node) WithContent(content []*Node) *Node {
	out := *n
	out.Content = content
	return &out
}

// WithMarks returns a shallow copy of n carrying marks.
func (n *Node) WithMarks(marks []Mark) *Node {
	out := *n
	out.Marks = marks
	return &out
}

// TextContent concatenates the text of every text leaf below n, in order.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.appendText(&sb)
	return sb.String()
}

func (n *Node) appendText(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == KindText {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Content {
		c.appendText(sb)
	}
}

// HasMark reports whether n carries a mark of the given type.
func (n *Node) HasMark(markType string) bool {
	if n == nil {
		return false
	}
	for _, m := range n.Marks {
		if m.Type == markType {
			return true
		}
	}
	return false
}
