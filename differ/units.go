package differ

import "github.com/erraggy/docdiff/document"

// unit is the granularity the matcher works at: either one non-text node,
// or a maximal run of consecutive text leaves.
type unit struct {
	node *document.Node
	run  []*document.Node
}

func (u unit) isRun() bool {
	return u.run != nil
}

// normalize groups consecutive text leaves into runs. Every other child is
// its own unit. Order is preserved.
func normalize(content []*document.Node) []unit {
	units := make([]unit, 0, len(content))
	start := -1
	for i, c := range content {
		if c.Kind == document.KindText {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			units = append(units, unit{run: content[start:i:i]})
			start = -1
		}
		units = append(units, unit{node: c})
	}
	if start >= 0 {
		units = append(units, unit{run: content[start:len(content):len(content)]})
	}
	return units
}

// unitsEqual reports whether two units have the same shape and pairwise
// equal nodes.
func unitsEqual(a, b unit) bool {
	if a.isRun() != b.isRun() {
		return false
	}
	if !a.isRun() {
		return document.Equal(a.node, b.node)
	}
	if len(a.run) != len(b.run) {
		return false
	}
	for i := range a.run {
		if !document.Equal(a.run[i], b.run[i]) {
			return false
		}
	}
	return true
}

// flatten expands units back into the nodes they were built from.
func flatten(units []unit) []*document.Node {
	n := 0
	for _, u := range units {
		if u.isRun() {
			n += len(u.run)
		} else {
			n++
		}
	}
	out := make([]*document.Node, 0, n)
	for _, u := range units {
		if u.isRun() {
			out = append(out, u.run...)
		} else {
			out = append(out, u.node)
		}
	}
	return out
}
