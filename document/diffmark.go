package document

// DiffMarkType is the mark type the differ appends to changed leaves.
const DiffMarkType = "diffMark"

// DiffType says whether a leaf was inserted or deleted.
// It is stored as the "type" attribute of a diff mark.
type DiffType string

const (
	// DiffInserted marks content present only in the new document.
	DiffInserted DiffType = "inserted"
	// DiffDeleted marks content present only in the old document.
	DiffDeleted DiffType = "deleted"
)

// String returns the attribute value of the diff type.
func (t DiffType) String() string {
	return string(t)
}

// NewDiffMark constructs a diff mark through the schema.
func NewDiffMark(schema Schema, t DiffType) (Mark, error) {
	return schema.NewMark(DiffMarkType, Attrs{"type": string(t)})
}

// DiffMarkOf returns the diff type of the first diff mark on n.
// ok is false for unchanged nodes.
func DiffMarkOf(n *Node) (t DiffType, ok bool) {
	if n == nil {
		return "", false
	}
	for _, m := range n.Marks {
		if m.Type != DiffMarkType {
			continue
		}
		if v, isString := m.Attrs["type"].(string); isString {
			return DiffType(v), true
		}
	}
	return "", false
}

// StripDiffMarks returns marks without any diff marks. The input slice is
// returned unchanged when it holds none.
func StripDiffMarks(marks []Mark) []Mark {
	idx := -1
	for i, m := range marks {
		if m.Type == DiffMarkType {
			idx = i
			break
		}
	}
	if idx < 0 {
		return marks
	}
	out := make([]Mark, 0, len(marks)-1)
	out = append(out, marks[:idx]...)
	for _, m := range marks[idx+1:] {
		if m.Type != DiffMarkType {
			out = append(out, m)
		}
	}
	return out
}
