package differ

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/erraggy/docdiff/docerrors"
	"github.com/erraggy/docdiff/document"
)

// patcher holds everything one diff call needs. It lives for a single call.
type patcher struct {
	schema   document.Schema
	inserted document.Mark
	deleted  document.Mark
	dmp      *diffmatchpatch.DiffMatchPatch
	cleanup  bool
	log      document.Logger
}

func (d *Differ) newPatcher(schema document.Schema) (*patcher, error) {
	if schema == nil {
		return nil, &docerrors.ConfigError{Option: "schema", Message: "schema cannot be nil"}
	}
	inserted, err := document.NewDiffMark(schema, document.DiffInserted)
	if err != nil {
		return nil, fmt.Errorf("differ: building inserted mark: %w", err)
	}
	deleted, err := document.NewDiffMark(schema, document.DiffDeleted)
	if err != nil {
		return nil, fmt.Errorf("differ: building deleted mark: %w", err)
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = d.TextDiffTimeout

	return &patcher{
		schema:   schema,
		inserted: inserted,
		deleted:  deleted,
		dmp:      dmp,
		cleanup:  d.SemanticCleanup,
		log:      d.log(),
	}, nil
}

// patchNode merges two nodes of the same type. The result keeps the old
// node's type, attributes, and marks.
func (p *patcher) patchNode(oldNode, newNode *document.Node) (*document.Node, error) {
	content, err := p.patchUnits(normalize(oldNode.Content), normalize(newNode.Content))
	if err != nil {
		return nil, err
	}
	return oldNode.WithContent(content), nil
}

// patchUnits strips the common prefix and suffix and hands the middle to
// the matcher. The suffix never overlaps the prefix.
func (p *patcher) patchUnits(oldUnits, newUnits []unit) ([]*document.Node, error) {
	prefix := 0
	for prefix < len(oldUnits) && prefix < len(newUnits) && unitsEqual(oldUnits[prefix], newUnits[prefix]) {
		prefix++
	}
	suffix := 0
	for suffix < len(oldUnits)-prefix && suffix < len(newUnits)-prefix &&
		unitsEqual(oldUnits[len(oldUnits)-1-suffix], newUnits[len(newUnits)-1-suffix]) {
		suffix++
	}

	middle, err := p.patchRemain(
		oldUnits[prefix:len(oldUnits)-suffix],
		newUnits[prefix:len(newUnits)-suffix],
	)
	if err != nil {
		return nil, err
	}

	out := flatten(oldUnits[:prefix])
	out = append(out, middle...)
	out = append(out, flatten(oldUnits[len(oldUnits)-suffix:])...)
	return out, nil
}

// patchRemain handles the region between the common prefix and suffix.
func (p *patcher) patchRemain(oldUnits, newUnits []unit) ([]*document.Node, error) {
	switch {
	case len(oldUnits) == 0 && len(newUnits) == 0:
		return nil, nil
	case len(oldUnits) == 0:
		return p.markUnits(newUnits, p.inserted), nil
	case len(newUnits) == 0:
		return p.markUnits(oldUnits, p.deleted), nil
	}

	m := matchUnits(oldUnits, newUnits)
	if m.count == 0 {
		return p.reconcile(oldUnits, newUnits)
	}
	p.log.Debug("matched units",
		"oldStart", m.oldStart, "newStart", m.newStart, "count", m.count,
		"oldUnits", len(oldUnits), "newUnits", len(newUnits),
	)

	before, err := p.patchUnits(oldUnits[:m.oldStart], newUnits[:m.newStart])
	if err != nil {
		return nil, err
	}
	after, err := p.patchUnits(oldUnits[m.oldEnd:], newUnits[m.newEnd:])
	if err != nil {
		return nil, err
	}

	out := before
	out = append(out, flatten(oldUnits[m.oldStart:m.oldEnd])...)
	out = append(out, after...)
	return out, nil
}

// reconcile pairs units from both ends when no unit of old equals any unit
// of new. Pairs of text runs are diffed character by character, pairs of
// compatible elements are merged recursively, and anything else becomes a
// deletion followed by an insertion. When both the leftmost and the
// rightmost pair are compatible, the left pair is taken first.
func (p *patcher) reconcile(oldUnits, newUnits []unit) ([]*document.Node, error) {
	var left, right [][]*document.Node
	lo, ln := 0, 0
	ho, hn := len(oldUnits), len(newUnits)

	for lo < ho && ln < hn {
		switch {
		case compatible(oldUnits[lo], newUnits[ln]):
			nodes, err := p.patchPair(oldUnits[lo], newUnits[ln])
			if err != nil {
				return nil, err
			}
			left = append(left, nodes)
			lo++
			ln++
		case compatible(oldUnits[ho-1], newUnits[hn-1]):
			nodes, err := p.patchPair(oldUnits[ho-1], newUnits[hn-1])
			if err != nil {
				return nil, err
			}
			right = append(right, nodes)
			ho--
			hn--
		default:
			p.log.Debug("replacing unit", "old", unitType(oldUnits[lo]), "new", unitType(newUnits[ln]))
			nodes := p.markUnit(oldUnits[lo], p.deleted)
			nodes = append(nodes, p.markUnit(newUnits[ln], p.inserted)...)
			left = append(left, nodes)
			lo++
			ln++
		}
	}

	var out []*document.Node
	for _, nodes := range left {
		out = append(out, nodes...)
	}
	out = append(out, p.markUnits(oldUnits[lo:ho], p.deleted)...)
	out = append(out, p.markUnits(newUnits[ln:hn], p.inserted)...)
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, right[i]...)
	}
	return out, nil
}

// compatible reports whether two unequal units can be merged in place
// rather than replaced. Elements must agree on type, attributes, and marks,
// and at least one must have children; otherwise the merged node could not
// represent both versions. A change to attributes or marks alone therefore
// replaces the whole subtree: the old node deleted, the new node inserted.
func compatible(a, b unit) bool {
	if a.isRun() || b.isRun() {
		return a.isRun() && b.isRun()
	}
	if a.node.Type != b.node.Type {
		return false
	}
	if a.node.IsLeaf() && b.node.IsLeaf() {
		return false
	}
	return document.EqualAttrs(a.node.Attrs, b.node.Attrs) && document.EqualMarks(a.node.Marks, b.node.Marks)
}

func (p *patcher) patchPair(a, b unit) ([]*document.Node, error) {
	if a.isRun() {
		return p.patchTextRuns(a.run, b.run)
	}
	merged, err := p.patchNode(a.node, b.node)
	if err != nil {
		return nil, err
	}
	return []*document.Node{merged}, nil
}

func unitType(u unit) string {
	if u.isRun() {
		return "text run"
	}
	return u.node.Type
}
