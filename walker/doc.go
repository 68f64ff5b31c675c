// Package walker provides depth-first traversal of document trees.
//
// # Quick Start
//
// Print the text of every leaf with its path:
//
//	err := walker.Walk(root,
//	    walker.WithTextHandler(func(wc *walker.WalkContext, n *document.Node) walker.Action {
//	        fmt.Println(wc.JSONPath, n.Text)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # Handler Types
//
//   - [NodeHandler]: every node, before its children
//   - [NodePostHandler]: every node, after its children
//   - [TextHandler]: text leaves
//   - [LeafHandler]: text leaves and childless elements (images, hard breaks)
//   - [MarkHandler]: each mark of each node
//   - [SkippedHandler]: nodes whose children exceed the depth limit
//
// For one node, handlers run in that order: node, text, leaf, marks, then
// the children, then the post handler.
//
// # Options
//
// The tree comes from WithRoot, WithParsed, or WithFilePath when walking with
// WalkWithOptions. WithMaxDepth limits descent, and WithUserContext stops the
// walk when its context is cancelled. Handlers are registered with
// WithNodeHandler, WithNodePostHandler, WithTextHandler, WithLeafHandler,
// WithMarkHandler, and WithSkippedHandler.
//
// # Paths
//
// [WalkContext].JSONPath locates each node from the root:
// "$" is the root and "$.content[1].content[0]" is the first child of the
// root's second child.
//
// # Collectors
//
// [CollectChanges] lists the leaves of a merged document that carry a diff
// mark, and [CollectTypes] counts node and mark types.
package walker
