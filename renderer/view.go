package renderer

import (
	"fmt"
	"strings"

	"github.com/erraggy/docdiff/document"
)

// View selects which side of a merged document is rendered.
type View int

const (
	// ViewMerged renders both sides, with changes highlighted
	ViewMerged View = iota
	// ViewOld drops inserted content, reconstructing the old document
	ViewOld
	// ViewNew drops deleted content, reconstructing the new document
	ViewNew
)

var viewNames = map[View]string{
	ViewMerged: "merged",
	ViewOld:    "old",
	ViewNew:    "new",
}

// String returns the name of the view
func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView converts a view name (merged, old, new) to a View.
func ParseView(name string) (View, error) {
	for v, n := range viewNames {
		if strings.EqualFold(name, n) {
			return v, nil
		}
	}
	return ViewMerged, fmt.Errorf("renderer: unknown view %q (expected merged, old, or new)", name)
}

// dropped reports whether a leaf with the given diff mark is hidden in v.
func (v View) dropped(t document.DiffType, marked bool) bool {
	if !marked {
		return false
	}
	switch v {
	case ViewOld:
		return t == document.DiffInserted
	case ViewNew:
		return t == document.DiffDeleted
	default:
		return false
	}
}

// Project returns the side of a merged document selected by view, with
// diff marks removed. ViewMerged returns root itself.
//
// A container is dropped when it had leaves and all of them were dropped,
// so whole inserted or deleted blocks disappear rather than leaving empty
// shells behind. The root is always kept.
func Project(root *document.Node, view View) *document.Node {
	if root == nil || view == ViewMerged {
		return root
	}
	out, ok := project(root, view)
	if !ok {
		return root.WithContent(nil)
	}
	return out
}

func project(n *document.Node, view View) (*document.Node, bool) {
	if n.IsLeaf() {
		t, marked := document.DiffMarkOf(n)
		if view.dropped(t, marked) {
			return nil, false
		}
		if marked {
			return n.WithMarks(document.StripDiffMarks(n.Marks)), true
		}
		return n, true
	}

	content := make([]*document.Node, 0, len(n.Content))
	changed := false
	for _, c := range n.Content {
		pc, ok := project(c, view)
		if !ok {
			changed = true
			continue
		}
		if pc != c {
			changed = true
		}
		content = append(content, pc)
	}
	if len(content) == 0 {
		return nil, false
	}
	if !changed {
		return n, true
	}
	return n.WithContent(content), true
}
