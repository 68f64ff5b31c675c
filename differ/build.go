package differ

import "github.com/erraggy/docdiff/document"

// markUnits marks every leaf of every unit with mark.
func (p *patcher) markUnits(units []unit, mark document.Mark) []*document.Node {
	var out []*document.Node
	for _, u := range units {
		out = append(out, p.markUnit(u, mark)...)
	}
	return out
}

func (p *patcher) markUnit(u unit, mark document.Mark) []*document.Node {
	if u.isRun() {
		out := make([]*document.Node, len(u.run))
		for i, leaf := range u.run {
			out[i] = markSubtree(leaf, mark)
		}
		return out
	}
	return []*document.Node{markSubtree(u.node, mark)}
}

// markSubtree copies n with mark appended to every leaf below it. Containers
// are copied but not marked themselves.
func markSubtree(n *document.Node, mark document.Mark) *document.Node {
	if n.IsLeaf() {
		return n.WithMarks(withDiffMark(n.Marks, mark))
	}
	content := make([]*document.Node, len(n.Content))
	for i, c := range n.Content {
		content[i] = markSubtree(c, mark)
	}
	return n.WithContent(content)
}

// withDiffMark returns a new slice holding marks followed by mark. Any diff
// mark already present is dropped so a leaf never carries two.
func withDiffMark(marks []document.Mark, mark document.Mark) []document.Mark {
	marks = document.StripDiffMarks(marks)
	out := make([]document.Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, mark)
}
