package document

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/docdiff/docerrors"
)

const sampleJSON = `{
  "type": "doc",
  "content": [
    {
      "type": "heading",
      "attrs": {"level": 1},
      "content": [{"type": "text", "text": "Title"}]
    },
    {
      "type": "paragraph",
      "content": [
        {"type": "text", "text": "Hello "},
        {"type": "text", "text": "world", "marks": [{"type": "bold"}]}
      ]
    }
  ]
}`

const sampleYAML = `type: doc
content:
  - type: heading
    attrs:
      level: 1
    content:
      - type: text
        text: Title
  - type: paragraph
    content:
      - type: text
        text: "Hello "
      - type: text
        text: world
        marks:
          - type: bold
`

func TestDecode_JSON(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON), SourceFormatUnknown)
	require.NoError(t, err)

	assert.Equal(t, "doc", doc.Type)
	assert.Equal(t, KindElement, doc.Kind)
	require.Len(t, doc.Content, 2)

	heading := doc.Content[0]
	assert.Equal(t, "heading", heading.Type)
	assert.Equal(t, float64(1), heading.Attrs["level"])

	world := doc.Content[1].Content[1]
	assert.Equal(t, KindText, world.Kind)
	assert.Equal(t, "world", world.Text)
	require.Len(t, world.Marks, 1)
	assert.Equal(t, "bold", world.Marks[0].Type)
}

func TestDecode_YAMLEqualsJSON(t *testing.T) {
	fromJSON, err := Decode([]byte(sampleJSON), SourceFormatJSON)
	require.NoError(t, err)
	fromYAML, err := Decode([]byte(sampleYAML), SourceFormatYAML)
	require.NoError(t, err)

	assert.True(t, Equal(fromJSON, fromYAML))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pointer string
	}{
		{"missing type", `{"content": []}`, "$"},
		{"not an object", `[1, 2]`, "$"},
		{"child missing type", `{"type":"doc","content":[{"type":"paragraph"},{"text":"x"}]}`, "$.content[1]"},
		{"bad marks", `{"type":"text","text":"x","marks":"bold"}`, "$.marks"},
		{"mark without type", `{"type":"text","text":"x","marks":[{"attrs":{}}]}`, "$.marks[0]"},
		{"text on element", `{"type":"paragraph","text":"x"}`, "$"},
		{"content on text", `{"type":"text","text":"x","content":[{"type":"text","text":"y"}]}`, "$"},
		{"non-string text", `{"type":"text","text":5}`, "$.text"},
		{"bad attrs", `{"type":"heading","attrs":[1]}`, "$.attrs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), SourceFormatJSON)
			require.Error(t, err)
			assert.True(t, errors.Is(err, docerrors.ErrParse))

			var pe *docerrors.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.pointer, pe.Pointer)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"type": "doc"`), SourceFormatUnknown)
	assert.ErrorIs(t, err, docerrors.ErrParse)

	_, err = Decode([]byte("   "), SourceFormatUnknown)
	assert.ErrorIs(t, err, docerrors.ErrParse)
}

func TestNode_JSONRoundTrip(t *testing.T) {
	var doc Node
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &doc))

	data, err := json.Marshal(&doc)
	require.NoError(t, err)

	var again Node
	require.NoError(t, json.Unmarshal(data, &again))
	assert.True(t, Equal(&doc, &again))
}

func TestNode_MarshalJSON_Shape(t *testing.T) {
	p := NewElement("paragraph", nil,
		NewText("hi", Mark{Type: DiffMarkType, Attrs: Attrs{"type": "inserted"}}),
	)
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"paragraph","content":[{"type":"text","text":"hi","marks":[{"type":"diffMark","attrs":{"type":"inserted"}}]}]}`,
		string(data))
}

func TestEncode_YAML(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON), SourceFormatJSON)
	require.NoError(t, err)

	data, err := Encode(doc, SourceFormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: doc")

	again, err := Decode(data, SourceFormatYAML)
	require.NoError(t, err)
	assert.True(t, Equal(doc, again))
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(nil, SourceFormatJSON)
	assert.Error(t, err)

	_, err = Encode(NewText("x"), SourceFormat("toml"))
	assert.Error(t, err)
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  \n{}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("type: doc")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte("\n\t ")))
}
