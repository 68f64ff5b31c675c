package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/docdiff/docerrors"
)

// SourceFormat represents the encoding of a document
type SourceFormat string

const (
	// SourceFormatJSON indicates ProseMirror JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the same tree written as YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// wireNode is the serialized shape of a node: {type, attrs?, marks?, text?, content?}.
// Field order here is the field order of encoded YAML.
type wireNode struct {
	Type    string      `json:"type" yaml:"type"`
	Attrs   Attrs       `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Marks   []Mark      `json:"marks,omitempty" yaml:"marks,omitempty"`
	Text    *string     `json:"text,omitempty" yaml:"text,omitempty"`
	Content []*wireNode `json:"content,omitempty" yaml:"content,omitempty"`
}

func toWire(n *Node) *wireNode {
	w := &wireNode{
		Type:  n.Type,
		Attrs: n.Attrs,
		Marks: n.Marks,
	}
	if n.Kind == KindText {
		text := n.Text
		w.Text = &text
	}
	if len(n.Content) > 0 {
		w.Content = make([]*wireNode, len(n.Content))
		for i, c := range n.Content {
			w.Content[i] = toWire(c)
		}
	}
	return w
}

// MarshalJSON encodes the node in ProseMirror JSON form.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(n))
}

// UnmarshalJSON decodes a node from ProseMirror JSON. The node kind is
// derived from its type.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := decodeNode(raw, "$")
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

// Encode serializes a document. JSON output is indented with two spaces.
func Encode(n *Node, format SourceFormat) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("document: cannot encode nil node")
	}
	switch format {
	case SourceFormatYAML:
		return yaml.Marshal(toWire(n))
	case SourceFormatJSON, SourceFormatUnknown, "":
		data, err := json.MarshalIndent(toWire(n), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("document: unsupported format %q", format)
	}
}

// Decode parses data in the given format. SourceFormatUnknown detects the
// format from the content.
func Decode(data []byte, format SourceFormat) (*Node, error) {
	if format == SourceFormatUnknown || format == "" {
		format = detectFormatFromContent(data)
	}
	var raw any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &docerrors.ParseError{Message: "invalid JSON", Cause: err}
		}
	case SourceFormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &docerrors.ParseError{Message: "invalid YAML", Cause: err}
		}
	default:
		return nil, &docerrors.ParseError{Message: "empty document"}
	}
	return decodeNode(raw, "$")
}

// detectFormatFromContent reports JSON for content starting with '{' or '['
// and YAML otherwise.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// decodeNode builds a node from the generic value produced by either the
// JSON or the YAML decoder.
func decodeNode(raw any, pointer string) (*Node, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, &docerrors.ParseError{Pointer: pointer, Message: fmt.Sprintf("node must be an object, got %T", raw)}
	}

	nodeType, ok := obj["type"].(string)
	if !ok || nodeType == "" {
		return nil, &docerrors.ParseError{Pointer: pointer, Message: "node has no type"}
	}

	n := &Node{Kind: KindOf(nodeType), Type: nodeType}

	attrs, err := decodeAttrs(obj["attrs"], pointer+".attrs")
	if err != nil {
		return nil, err
	}
	n.Attrs = attrs

	if rawMarks, present := obj["marks"]; present && rawMarks != nil {
		list, ok := rawMarks.([]any)
		if !ok {
			return nil, &docerrors.ParseError{Pointer: pointer + ".marks", Message: "marks must be an array"}
		}
		n.Marks = make([]Mark, 0, len(list))
		for i, rm := range list {
			m, err := decodeMark(rm, pointer+".marks["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			n.Marks = append(n.Marks, m)
		}
	}

	if rawText, present := obj["text"]; present && rawText != nil {
		text, ok := rawText.(string)
		if !ok {
			return nil, &docerrors.ParseError{Pointer: pointer + ".text", Message: "text must be a string"}
		}
		if n.Kind != KindText {
			return nil, &docerrors.ParseError{Pointer: pointer, Message: fmt.Sprintf("%q node cannot carry text", nodeType)}
		}
		n.Text = text
	}

	if rawContent, present := obj["content"]; present && rawContent != nil {
		list, ok := rawContent.([]any)
		if !ok {
			return nil, &docerrors.ParseError{Pointer: pointer + ".content", Message: "content must be an array"}
		}
		if n.Kind == KindText && len(list) > 0 {
			return nil, &docerrors.ParseError{Pointer: pointer, Message: "text node cannot have content"}
		}
		if len(list) > 0 {
			n.Content = make([]*Node, 0, len(list))
		}
		for i, rc := range list {
			child, err := decodeNode(rc, pointer+".content["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
	}

	return n, nil
}

func decodeMark(raw any, pointer string) (Mark, error) {
	obj, ok := asObject(raw)
	if !ok {
		return Mark{}, &docerrors.ParseError{Pointer: pointer, Message: fmt.Sprintf("mark must be an object, got %T", raw)}
	}
	markType, ok := obj["type"].(string)
	if !ok || markType == "" {
		return Mark{}, &docerrors.ParseError{Pointer: pointer, Message: "mark has no type"}
	}
	attrs, err := decodeAttrs(obj["attrs"], pointer+".attrs")
	if err != nil {
		return Mark{}, err
	}
	return Mark{Type: markType, Attrs: attrs}, nil
}

func decodeAttrs(raw any, pointer string) (Attrs, error) {
	if raw == nil {
		return nil, nil
	}
	obj, ok := asObject(raw)
	if !ok {
		return nil, &docerrors.ParseError{Pointer: pointer, Message: "attrs must be an object"}
	}
	if len(obj) == 0 {
		return nil, nil
	}
	attrs := make(Attrs, len(obj))
	for k, v := range obj {
		attrs[k] = normalizeValue(v)
	}
	return attrs, nil
}

// asObject accepts the object shapes both decoders produce.
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = item
		}
		return out, true
	default:
		return nil, false
	}
}

// normalizeValue converts nested YAML maps to map[string]any so attribute
// values re-encode as JSON.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any, map[any]any:
		obj, _ := asObject(val)
		out := make(map[string]any, len(obj))
		for k, item := range obj {
			out[k] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
