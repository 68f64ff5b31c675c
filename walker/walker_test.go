package walker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/internal/testutil"
)

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(7)", Action(7).String())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(-1).IsValid())
}

func TestWalk_NilRoot(t *testing.T) {
	err := Walk(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil root")
}

func TestWalk_PathsAndOrder(t *testing.T) {
	doc := testutil.Doc(
		testutil.Paragraph(testutil.Text("a"), testutil.Text("b")),
		testutil.Paragraph(testutil.Image("x.png")),
	)

	var paths []string
	var depths []int
	err := Walk(doc, WithNodeHandler(func(wc *WalkContext, n *document.Node) Action {
		paths = append(paths, wc.JSONPath)
		depths = append(depths, wc.Depth)
		return Continue
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"$",
		"$.content[0]",
		"$.content[0].content[0]",
		"$.content[0].content[1]",
		"$.content[1]",
		"$.content[1].content[0]",
	}, paths)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2}, depths)
}

func TestWalk_ParentAndIndex(t *testing.T) {
	p := testutil.Paragraph(testutil.Text("a"), testutil.Text("b"))
	doc := testutil.Doc(p)

	err := Walk(doc, WithTextHandler(func(wc *WalkContext, n *document.Node) Action {
		assert.Same(t, p, wc.Parent)
		assert.Equal(t, n, p.Content[wc.Index])
		assert.False(t, wc.IsRoot())
		return Continue
	}), WithNodeHandler(func(wc *WalkContext, n *document.Node) Action {
		if n == doc {
			assert.True(t, wc.IsRoot())
			assert.Equal(t, -1, wc.Index)
		}
		return Continue
	}))
	require.NoError(t, err)
}

func TestWalk_SkipChildren(t *testing.T) {
	doc := testutil.Doc(
		testutil.Heading(1, testutil.Text("title")),
		testutil.Paragraph(testutil.Text("body")),
	)

	var texts []string
	err := Walk(doc,
		WithNodeHandler(func(wc *WalkContext, n *document.Node) Action {
			if n.Type == "heading" {
				return SkipChildren
			}
			return Continue
		}),
		WithTextHandler(func(wc *WalkContext, n *document.Node) Action {
			texts = append(texts, n.Text)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"body"}, texts)
}

func TestWalk_Stop(t *testing.T) {
	doc := testutil.Doc(
		testutil.Paragraph(testutil.Text("one"), testutil.Text("two")),
		testutil.Paragraph(testutil.Text("three")),
	)

	var texts []string
	var post int
	err := Walk(doc,
		WithTextHandler(func(wc *WalkContext, n *document.Node) Action {
			texts = append(texts, n.Text)
			if n.Text == "two" {
				return Stop
			}
			return Continue
		}),
		WithNodePostHandler(func(wc *WalkContext, n *document.Node) { post++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, texts)
	assert.Equal(t, 1, post, "only the first text leaf completed before the stop")
}

func TestWalk_PostHandlerOrder(t *testing.T) {
	doc := testutil.Doc(testutil.Paragraph(testutil.Text("a")))

	var events []string
	err := Walk(doc,
		WithNodeHandler(func(wc *WalkContext, n *document.Node) Action {
			events = append(events, "enter "+n.Type)
			return Continue
		}),
		WithNodePostHandler(func(wc *WalkContext, n *document.Node) {
			events = append(events, "leave "+n.Type)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter doc", "enter paragraph", "enter text", "leave text", "leave paragraph", "leave doc",
	}, events)
}

func TestWalk_LeafAndMarkHandlers(t *testing.T) {
	doc := testutil.Doc(
		testutil.Paragraph(testutil.Text("a", testutil.Bold(), testutil.Italic()), testutil.Image("x.png")),
		testutil.Paragraph(),
	)

	var leaves []string
	var marks []string
	err := Walk(doc,
		WithLeafHandler(func(wc *WalkContext, n *document.Node) Action {
			leaves = append(leaves, n.Type)
			return Continue
		}),
		WithMarkHandler(func(wc *WalkContext, n *document.Node, m document.Mark) Action {
			marks = append(marks, m.Type)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "image", "paragraph"}, leaves)
	assert.Equal(t, []string{"bold", "italic"}, marks)
}

func TestWalk_MaxDepth(t *testing.T) {
	doc := testutil.Doc(testutil.Paragraph(testutil.Text("deep")))

	var skipped []string
	var visited int
	err := Walk(doc,
		WithMaxDepth(1),
		WithNodeHandler(func(wc *WalkContext, n *document.Node) Action {
			visited++
			return Continue
		}),
		WithSkippedHandler(func(wc *WalkContext, n *document.Node) {
			skipped = append(skipped, wc.JSONPath)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, visited)
	assert.Equal(t, []string{"$.content[0]"}, skipped)
}

func TestWalk_MaxDepthIgnoresNonPositive(t *testing.T) {
	w := New()
	WithMaxDepth(0)(w)
	assert.Equal(t, DefaultMaxDepth, w.maxDepth)
}

func TestWalk_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(testutil.NewSimpleDocument(), WithUserContext(ctx))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_ContextAvailableToHandlers(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	err := Walk(testutil.NewSimpleDocument(), WithUserContext(ctx),
		WithNodeHandler(func(wc *WalkContext, n *document.Node) Action {
			assert.Equal(t, "v", wc.Context().Value(key{}))
			return Stop
		}))
	require.NoError(t, err)

	wc := &WalkContext{}
	assert.Equal(t, context.Background(), wc.Context())
	assert.Equal(t, ctx, wc.WithContext(ctx).Context())
}

func TestWalkWithOptions(t *testing.T) {
	doc := testutil.NewDetailedDocument()
	path := testutil.WriteTempJSON(t, doc)

	count := func(opts ...Option) int {
		n := 0
		opts = append(opts, WithTextHandler(func(wc *WalkContext, _ *document.Node) Action {
			n++
			return Continue
		}))
		require.NoError(t, WalkWithOptions(opts...))
		return n
	}

	assert.Equal(t, 8, count(WithFilePath(path)))
	assert.Equal(t, 8, count(WithRoot(doc)))
	assert.Equal(t, 8, count(WithParsed(&document.ParseResult{Document: doc})))

	err := WalkWithOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input source")

	err = WalkWithOptions(WithRoot(doc), WithFilePath(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple input sources")

	err = WalkWithOptions(WithParsed(&document.ParseResult{}))
	assert.Error(t, err)
}
