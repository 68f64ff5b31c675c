package document

import "unicode/utf8"

// Stats summarizes the size of a document.
type Stats struct {
	// NodeCount counts every node, the root included.
	NodeCount int `json:"nodeCount"`
	// TextLeafCount counts text leaves.
	TextLeafCount int `json:"textLeafCount"`
	// MaxDepth is the number of levels in the tree; a lone root has depth 1.
	MaxDepth int `json:"maxDepth"`
	// CharCount counts runes across all text leaves.
	CharCount int `json:"charCount"`
}

// ComputeStats walks the tree rooted at n.
func ComputeStats(n *Node) Stats {
	var s Stats
	collectStats(n, 1, &s)
	return s
}

func collectStats(n *Node, depth int, s *Stats) {
	if n == nil {
		return
	}
	s.NodeCount++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if n.Kind == KindText {
		s.TextLeafCount++
		s.CharCount += utf8.RuneCountInString(n.Text)
		return
	}
	for _, c := range n.Content {
		collectStats(c, depth+1, s)
	}
}
