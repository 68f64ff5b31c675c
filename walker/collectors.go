package walker

import (
	"fmt"
	"strconv"

	"github.com/erraggy/docdiff/document"
)

// Change describes one leaf of a merged document that carries a diff mark.
type Change struct {
	// JSONPath is the path to the leaf.
	JSONPath string `json:"path"`

	// Type is inserted or deleted.
	Type document.DiffType `json:"type"`

	// NodeType is the leaf's node type ("text", "image", ...).
	NodeType string `json:"nodeType"`

	// Text is the leaf's text; empty for non-text leaves.
	Text string `json:"text,omitempty"`

	// Node is the marked leaf.
	Node *document.Node `json:"-"`
}

// String returns a one-line description of the change.
func (c Change) String() string {
	symbol := "+"
	if c.Type == document.DiffDeleted {
		symbol = "-"
	}
	if c.NodeType == document.TextType {
		return fmt.Sprintf("%s %s %s", symbol, c.JSONPath, strconv.Quote(c.Text))
	}
	return fmt.Sprintf("%s %s <%s>", symbol, c.JSONPath, c.NodeType)
}

// ChangeCollector holds the changes of a merged document, in document order.
type ChangeCollector struct {
	// All contains every marked leaf.
	All []*Change

	// Inserted contains only leaves marked inserted.
	Inserted []*Change

	// Deleted contains only leaves marked deleted.
	Deleted []*Change

	// Unchanged counts leaves without a diff mark.
	Unchanged int

	// ByPath provides lookup by JSON path.
	ByPath map[string]*Change
}

// HasChanges reports whether any leaf carries a diff mark.
func (c *ChangeCollector) HasChanges() bool {
	return len(c.All) > 0
}

// InsertedText concatenates the text of all inserted text leaves.
func (c *ChangeCollector) InsertedText() string {
	return joinText(c.Inserted)
}

// DeletedText concatenates the text of all deleted text leaves.
func (c *ChangeCollector) DeletedText() string {
	return joinText(c.Deleted)
}

func joinText(changes []*Change) string {
	var out []byte
	for _, ch := range changes {
		out = append(out, ch.Text...)
	}
	return string(out)
}

// CollectChanges walks a merged document and collects every leaf that
// carries a diff mark.
func CollectChanges(root *document.Node) (*ChangeCollector, error) {
	collector := &ChangeCollector{
		All:      make([]*Change, 0),
		Inserted: make([]*Change, 0),
		Deleted:  make([]*Change, 0),
		ByPath:   make(map[string]*Change),
	}

	err := Walk(root,
		WithLeafHandler(func(wc *WalkContext, n *document.Node) Action {
			dt, ok := document.DiffMarkOf(n)
			if !ok {
				collector.Unchanged++
				return Continue
			}

			change := &Change{
				JSONPath: wc.JSONPath,
				Type:     dt,
				NodeType: n.Type,
				Text:     n.Text,
				Node:     n,
			}
			collector.All = append(collector.All, change)
			collector.ByPath[wc.JSONPath] = change

			switch dt {
			case document.DiffInserted:
				collector.Inserted = append(collector.Inserted, change)
			case document.DiffDeleted:
				collector.Deleted = append(collector.Deleted, change)
			}
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// TypeCollector counts node and mark types in a document.
type TypeCollector struct {
	// Nodes maps a node type to the number of nodes of that type.
	Nodes map[string]int

	// Marks maps a mark type to the number of marks of that type.
	Marks map[string]int
}

// CollectTypes walks the document and counts node and mark types.
func CollectTypes(root *document.Node) (*TypeCollector, error) {
	collector := &TypeCollector{
		Nodes: make(map[string]int),
		Marks: make(map[string]int),
	}

	err := Walk(root,
		WithNodeHandler(func(_ *WalkContext, n *document.Node) Action {
			collector.Nodes[n.Type]++
			return Continue
		}),
		WithMarkHandler(func(_ *WalkContext, _ *document.Node, m document.Mark) Action {
			collector.Marks[m.Type]++
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}
