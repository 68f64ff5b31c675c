package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/docdiff/document"
)

// Option configures the Walker.
type Option func(*Walker)

// WithNodeHandler sets the handler called for every node before its children.
func WithNodeHandler(fn NodeHandler) Option {
	return func(w *Walker) { w.onNode = fn }
}

// WithNodePostHandler sets the handler called for every node after its children.
func WithNodePostHandler(fn NodePostHandler) Option {
	return func(w *Walker) { w.onNodePost = fn }
}

// WithTextHandler sets the handler for text leaves.
func WithTextHandler(fn TextHandler) Option {
	return func(w *Walker) { w.onText = fn }
}

// WithLeafHandler sets the handler for leaves (text leaves and childless elements).
func WithLeafHandler(fn LeafHandler) Option {
	return func(w *Walker) { w.onLeaf = fn }
}

// WithMarkHandler sets the handler for marks.
func WithMarkHandler(fn MarkHandler) Option {
	return func(w *Walker) { w.onMark = fn }
}

// WithSkippedHandler sets the handler called when the depth limit prevents
// visiting a node's children.
func WithSkippedHandler(fn SkippedHandler) Option {
	return func(w *Walker) { w.onSkipped = fn }
}

// WithMaxDepth sets the maximum depth whose children are visited.
// If depth is not positive, it is silently ignored and the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithUserContext sets the context for cancellation and deadline propagation.
// The context is available to handlers via wc.Context(), and a cancelled
// context ends the walk with an error.
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) {
		w.state.ctx = ctx
	}
}

// WithFilePath specifies a document file to parse and walk.
func WithFilePath(path string) Option {
	return func(w *Walker) {
		w.filePath = &path
	}
}

// WithParsed specifies a pre-parsed result to walk.
func WithParsed(result *document.ParseResult) Option {
	return func(w *Walker) {
		w.parsed = result
	}
}

// WithRoot specifies an in-memory tree to walk.
func WithRoot(root *document.Node) Option {
	return func(w *Walker) {
		w.root = root
	}
}

// WalkWithOptions walks a document using functional options for input,
// handlers, and configuration.
//
// Example:
//
//	walker.WalkWithOptions(
//	    walker.WithFilePath("merged.json"),
//	    walker.WithTextHandler(func(wc *walker.WalkContext, n *document.Node) walker.Action {
//	        fmt.Println(wc.JSONPath, n.Text)
//	        return walker.Continue
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	sources := 0
	for _, set := range []bool{w.filePath != nil, w.parsed != nil, w.root != nil} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("walker: no input source specified: use WithFilePath, WithParsed, or WithRoot")
	}
	if sources > 1 {
		return fmt.Errorf("walker: multiple input sources specified: use only one")
	}

	var root *document.Node
	switch {
	case w.root != nil:
		root = w.root
	case w.parsed != nil:
		root = w.parsed.Document
	default:
		result, err := document.ParseWithOptions(document.WithFilePath(*w.filePath))
		if err != nil {
			return fmt.Errorf("walker: failed to parse: %w", err)
		}
		root = result.Document
	}
	if root == nil {
		return fmt.Errorf("walker: nil root node")
	}

	return w.walk(root)
}
