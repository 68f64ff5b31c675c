package document

import "github.com/erraggy/docdiff/internal/equalutil"

// Equal reports whether two subtrees are structurally identical: same type,
// attributes, marks (in order), text for text leaves, and pairwise equal
// children. Two nil nodes are equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Type != b.Type {
		return false
	}
	if a.Kind == KindText && a.Text != b.Text {
		return false
	}
	if !EqualAttrs(a.Attrs, b.Attrs) || !EqualMarks(a.Marks, b.Marks) {
		return false
	}
	if len(a.Content) != len(b.Content) {
		return false
	}
	for i := range a.Content {
		if !Equal(a.Content[i], b.Content[i]) {
			return false
		}
	}
	return true
}

// EqualMarks reports whether two mark lists hold the same marks in the same order.
// A nil list equals an empty one.
func EqualMarks(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualMark(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualMark reports whether two marks have the same type and attributes.
func EqualMark(a, b Mark) bool {
	return a.Type == b.Type && EqualAttrs(a.Attrs, b.Attrs)
}

// EqualAttrs compares attribute maps by value. Numbers compare by numeric
// value regardless of representation, so a level decoded from JSON (float64)
// equals the same level decoded from YAML (int).
func EqualAttrs(a, b Attrs) bool {
	return equalutil.EqualMaps(a, b)
}
