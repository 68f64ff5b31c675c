package walker

import (
	"fmt"
	"strconv"

	"github.com/erraggy/docdiff/document"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// NodeHandler is called for every node, before its children.
type NodeHandler func(wc *WalkContext, n *document.Node) Action

// NodePostHandler is called for every node after its children were visited
// or skipped. It is not called once the walk was stopped.
type NodePostHandler func(wc *WalkContext, n *document.Node)

// TextHandler is called for each text leaf.
type TextHandler func(wc *WalkContext, n *document.Node) Action

// LeafHandler is called for each leaf: text leaves and childless elements.
type LeafHandler func(wc *WalkContext, n *document.Node) Action

// MarkHandler is called for each mark of a node, in order.
type MarkHandler func(wc *WalkContext, n *document.Node, m document.Mark) Action

// SkippedHandler is called when a node's children are not visited because
// the node sits at the maximum depth.
type SkippedHandler func(wc *WalkContext, n *document.Node)

// DefaultMaxDepth is the default maximum nesting depth visited.
const DefaultMaxDepth = 500

// Walker traverses document trees depth-first and calls handlers for each node.
type Walker struct {
	onNode     NodeHandler
	onNodePost NodePostHandler
	onText     TextHandler
	onLeaf     LeafHandler
	onMark     MarkHandler
	onSkipped  SkippedHandler

	maxDepth int

	// Input sources for WalkWithOptions
	filePath *string
	parsed   *document.ParseResult
	root     *document.Node

	state   walkState
	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: DefaultMaxDepth,
	}
}

// Walk traverses the tree rooted at root and calls the configured handlers.
func Walk(root *document.Node, opts ...Option) error {
	if root == nil {
		return fmt.Errorf("walker: nil root node")
	}
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(root)
}

func (w *Walker) walk(root *document.Node) error {
	w.stopped = false
	return w.visit(root, nil, -1, 0, "$")
}

func (w *Walker) visit(n, parent *document.Node, index, depth int, path string) error {
	if w.stopped {
		return nil
	}
	if ctx := w.state.ctx; ctx != nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("walker: %w", err)
		}
	}

	wc := w.state.buildContext(path, parent, index, depth)

	descend := true
	if w.onNode != nil {
		switch w.onNode(wc, n) {
		case Stop:
			w.stopped = true
			return nil
		case SkipChildren:
			descend = false
		}
	}

	if n.Kind == document.KindText && w.onText != nil {
		if w.onText(wc, n) == Stop {
			w.stopped = true
			return nil
		}
	}
	if n.IsLeaf() && w.onLeaf != nil {
		if w.onLeaf(wc, n) == Stop {
			w.stopped = true
			return nil
		}
	}
	if w.onMark != nil {
		for _, m := range n.Marks {
			if w.onMark(wc, n, m) == Stop {
				w.stopped = true
				return nil
			}
		}
	}

	if descend && len(n.Content) > 0 {
		if depth >= w.maxDepth {
			if w.onSkipped != nil {
				w.onSkipped(wc, n)
			}
		} else if err := w.visitChildren(n, depth, path); err != nil {
			return err
		}
	}
	if w.stopped {
		return nil
	}

	if w.onNodePost != nil {
		w.onNodePost(wc, n)
	}
	return nil
}

func (w *Walker) visitChildren(n *document.Node, depth int, path string) error {
	for i, child := range n.Content {
		if child == nil {
			continue
		}
		childPath := path + ".content[" + strconv.Itoa(i) + "]"
		if err := w.visit(child, n, i, depth+1, childPath); err != nil {
			return err
		}
		if w.stopped {
			return nil
		}
	}
	return nil
}
