package differ

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/erraggy/docdiff/document"
)

// leafSpan is the byte range one text leaf occupies in its run's text.
type leafSpan struct {
	start, end int
	marks      []document.Mark
}

// runText is a text run flattened to one string, remembering where each
// leaf starts and ends.
type runText struct {
	text  string
	spans []leafSpan
}

func newRunText(run []*document.Node) runText {
	var sb strings.Builder
	spans := make([]leafSpan, 0, len(run))
	for _, leaf := range run {
		start := sb.Len()
		sb.WriteString(leaf.Text)
		spans = append(spans, leafSpan{start: start, end: sb.Len(), marks: leaf.Marks})
	}
	return runText{text: sb.String(), spans: spans}
}

// spanAt returns the index of the leaf covering offset. Empty leaves never
// cover an offset.
func (r runText) spanAt(offset int) int {
	return sort.Search(len(r.spans), func(i int) bool {
		return r.spans[i].end > offset
	})
}

// split cuts text[start:end] at leaf boundaries and appends one piece per
// leaf, carrying that leaf's marks plus mark.
func (r runText) split(dst []piece, start, end int, mark document.Mark) []piece {
	for i := r.spanAt(start); i < len(r.spans) && r.spans[i].start < end; i++ {
		s := max(start, r.spans[i].start)
		e := min(end, r.spans[i].end)
		if s >= e {
			continue
		}
		dst = append(dst, piece{text: r.text[s:e], marks: withDiffMark(r.spans[i].marks, mark)})
	}
	return dst
}

// piece is a stretch of text with the marks its output leaf will carry.
type piece struct {
	text  string
	marks []document.Mark
}

// patchTextRuns diffs two text runs character by character. Unchanged text
// keeps the old leaf's marks; deleted text keeps the old marks plus a
// deleted diff mark; inserted text keeps the new marks plus an inserted diff
// mark. Text that is unchanged but formatted differently is emitted twice:
// deleted with the old marks, then inserted with the new ones.
//
// Runs holding invalid UTF-8 are replaced whole: the old run deleted, then
// the new run inserted, bytes untouched.
func (p *patcher) patchTextRuns(oldRun, newRun []*document.Node) ([]*document.Node, error) {
	oldText := newRunText(oldRun)
	newText := newRunText(newRun)

	if !utf8.ValidString(oldText.text) || !utf8.ValidString(newText.text) {
		p.log.Debug("replacing text run with invalid UTF-8",
			"old_bytes", len(oldText.text), "new_bytes", len(newText.text))
		out := p.markUnit(unit{run: oldRun}, p.deleted)
		return append(out, p.markUnit(unit{run: newRun}, p.inserted)...), nil
	}

	diffs := p.dmp.DiffMain(oldText.text, newText.text, false)
	if p.cleanup {
		diffs = p.dmp.DiffCleanupSemantic(diffs)
	}

	pieces := getPieceSlice()
	defer putPieceSlice(pieces)

	oldOffset, newOffset := 0, 0
	for _, d := range diffs {
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			*pieces = oldText.split(*pieces, oldOffset, oldOffset+n, p.deleted)
			oldOffset += n
		case diffmatchpatch.DiffInsert:
			*pieces = newText.split(*pieces, newOffset, newOffset+n, p.inserted)
			newOffset += n
		case diffmatchpatch.DiffEqual:
			*pieces = p.splitEqual(*pieces, oldText, newText, oldOffset, newOffset, n)
			oldOffset += n
			newOffset += n
		}
	}

	merged := mergePieces(*pieces)
	out := make([]*document.Node, 0, len(merged))
	for _, pc := range merged {
		leaf, err := p.schema.NewText(pc.text, pc.marks)
		if err != nil {
			return nil, fmt.Errorf("differ: building text leaf: %w", err)
		}
		out = append(out, leaf)
	}
	return out, nil
}

// splitEqual cuts an unchanged stretch of n bytes at every old and every new
// leaf boundary, so each sub-piece has one set of old marks and one set of
// new marks.
func (p *patcher) splitEqual(dst []piece, oldText, newText runText, oldOffset, newOffset, n int) []piece {
	cuts := getCutSlice()
	defer putCutSlice(cuts)

	*cuts = append(*cuts, 0, n)
	*cuts = appendCuts(*cuts, oldText, oldOffset, n)
	*cuts = appendCuts(*cuts, newText, newOffset, n)
	slices.Sort(*cuts)
	*cuts = slices.Compact(*cuts)

	for i := 0; i+1 < len(*cuts); i++ {
		a, b := (*cuts)[i], (*cuts)[i+1]
		oldMarks := oldText.spans[oldText.spanAt(oldOffset+a)].marks
		newMarks := newText.spans[newText.spanAt(newOffset+a)].marks
		text := oldText.text[oldOffset+a : oldOffset+b]

		if document.EqualMarks(oldMarks, newMarks) {
			dst = append(dst, piece{text: text, marks: oldMarks})
			continue
		}
		dst = append(dst,
			piece{text: text, marks: withDiffMark(oldMarks, p.deleted)},
			piece{text: text, marks: withDiffMark(newMarks, p.inserted)},
		)
	}
	return dst
}

// appendCuts adds the leaf boundaries of r that fall strictly inside
// [offset, offset+n), relative to offset.
func appendCuts(cuts []int, r runText, offset, n int) []int {
	for i := r.spanAt(offset); i < len(r.spans) && r.spans[i].start < offset+n; i++ {
		if end := r.spans[i].end - offset; end > 0 && end < n {
			cuts = append(cuts, end)
		}
	}
	return cuts
}

// mergePieces joins neighbours that carry identical marks. It reuses the
// backing array of pieces.
func mergePieces(pieces []piece) []piece {
	if len(pieces) == 0 {
		return pieces
	}
	out := pieces[:1]
	for _, pc := range pieces[1:] {
		last := &out[len(out)-1]
		if document.EqualMarks(last.marks, pc.marks) {
			last.text += pc.text
			continue
		}
		out = append(out, pc)
	}
	return out
}
