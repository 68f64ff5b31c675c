package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	bold := Mark{Type: "bold"}
	italic := Mark{Type: "italic"}

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", NewText("a"), nil, false},
		{"same text", NewText("a"), NewText("a"), true},
		{"different text", NewText("a"), NewText("b"), false},
		{"same marks", NewText("a", bold, italic), NewText("a", bold, italic), true},
		{"mark order matters", NewText("a", bold, italic), NewText("a", italic, bold), false},
		{"missing mark", NewText("a", bold), NewText("a"), false},
		{"mark attrs differ",
			NewText("a", Mark{Type: "link", Attrs: Attrs{"href": "x"}}),
			NewText("a", Mark{Type: "link", Attrs: Attrs{"href": "y"}}),
			false},
		{"different type", NewElement("paragraph", nil), NewElement("heading", nil), false},
		{"attrs compare by numeric value",
			NewElement("heading", Attrs{"level": 2}),
			NewElement("heading", Attrs{"level": float64(2)}),
			true},
		{"large integer attrs compare exactly",
			NewElement("image", Attrs{"id": int64(1<<53 + 1)}),
			NewElement("image", Attrs{"id": int64(1 << 53)}),
			false},
		{"nil and empty attrs", NewElement("paragraph", nil), NewElement("paragraph", Attrs{}), true},
		{"children pairwise",
			NewElement("paragraph", nil, NewText("a"), NewText("b")),
			NewElement("paragraph", nil, NewText("a"), NewText("b")),
			true},
		{"children count differs",
			NewElement("paragraph", nil, NewText("a")),
			NewElement("paragraph", nil, NewText("a"), NewText("b")),
			false},
		{"nested child differs",
			NewElement("doc", nil, NewElement("paragraph", nil, NewText("a"))),
			NewElement("doc", nil, NewElement("paragraph", nil, NewText("b"))),
			false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestEqualMarks_NilAndEmpty(t *testing.T) {
	assert.True(t, EqualMarks(nil, []Mark{}))
	assert.False(t, EqualMarks(nil, []Mark{{Type: "bold"}}))
}
