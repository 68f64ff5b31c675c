package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiffMark(t *testing.T) {
	m, err := NewDiffMark(DefaultSchema(), DiffDeleted)
	require.NoError(t, err)
	assert.Equal(t, Mark{Type: DiffMarkType, Attrs: Attrs{"type": "deleted"}}, m)
}

func TestDiffMarkOf(t *testing.T) {
	_, ok := DiffMarkOf(nil)
	assert.False(t, ok)

	_, ok = DiffMarkOf(NewText("x", Mark{Type: "bold"}))
	assert.False(t, ok)

	dt, ok := DiffMarkOf(NewText("x", Mark{Type: "bold"}, Mark{Type: DiffMarkType, Attrs: Attrs{"type": "inserted"}}))
	require.True(t, ok)
	assert.Equal(t, DiffInserted, dt)
	assert.Equal(t, "inserted", dt.String())
}

func TestStripDiffMarks(t *testing.T) {
	marks := []Mark{{Type: "bold"}, {Type: DiffMarkType, Attrs: Attrs{"type": "deleted"}}, {Type: "italic"}}
	assert.Equal(t, []Mark{{Type: "bold"}, {Type: "italic"}}, StripDiffMarks(marks))

	plain := []Mark{{Type: "bold"}}
	assert.Equal(t, plain, StripDiffMarks(plain))
	assert.Nil(t, StripDiffMarks(nil))
}
