package walker

import (
	"context"

	"github.com/erraggy/docdiff/document"
)

// WalkContext provides contextual information about the current node being visited.
// It follows the http.Request pattern for context access.
type WalkContext struct {
	// JSONPath is the path to the current node.
	// Example: "$.content[1].content[0]"
	JSONPath string

	// Parent is the node whose Content holds the current node; nil for the root.
	Parent *document.Node

	// Index is the position of the current node in Parent.Content; -1 for the root.
	Index int

	// Depth is the distance from the root; the root has depth 0.
	Depth int

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a shallow copy of WalkContext with the new context.
func (wc *WalkContext) WithContext(ctx context.Context) *WalkContext {
	wc2 := *wc
	wc2.ctx = ctx
	return &wc2
}

// IsRoot reports whether the current node is the root of the walk.
func (wc *WalkContext) IsRoot() bool {
	return wc.Parent == nil
}

// walkState carries what every WalkContext of a walk shares.
type walkState struct {
	ctx context.Context
}

func (s *walkState) buildContext(jsonPath string, parent *document.Node, index, depth int) *WalkContext {
	return &WalkContext{
		JSONPath: jsonPath,
		Parent:   parent,
		Index:    index,
		Depth:    depth,
		ctx:      s.ctx,
	}
}
