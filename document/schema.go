package document

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/erraggy/docdiff/docerrors"
)

// Schema constructs the nodes and marks the differ emits. The differ only
// asks it for text leaves and marks; element nodes are rebuilt from the
// inputs.
type Schema interface {
	// NewText creates a text leaf carrying marks.
	NewText(text string, marks []Mark) (*Node, error)
	// NewMark creates a mark of the named type.
	NewMark(markType string, attrs Attrs) (Mark, error)
}

// Validator is implemented by schemas that can check a whole document.
type Validator interface {
	Validate(root *Node) error
}

// AttrSpec describes one attribute of a node or mark type.
type AttrSpec struct {
	// Default is used when the attribute is missing and not Required.
	Default any
	// Required attributes must be supplied when the registry is strict.
	Required bool
}

// NodeSpec describes a node type.
type NodeSpec struct {
	Name  string
	Attrs map[string]AttrSpec
	// Inline nodes live inside textblocks (text, image, hardBreak).
	Inline bool
}

// MarkSpec describes a mark type.
type MarkSpec struct {
	Name  string
	Attrs map[string]AttrSpec
}

// Registry is a name-keyed Schema. By default it is permissive: unknown node
// and mark types are accepted and attribute defaults are filled in for known
// types. A strict registry rejects unknown types, unknown attributes, and
// missing required attributes.
//
// A Registry is safe for concurrent use once it is no longer being modified.
type Registry struct {
	nodes  map[string]NodeSpec
	marks  map[string]MarkSpec
	strict bool
}

var _ Schema = (*Registry)(nil)
var _ Validator = (*Registry)(nil)

// NewRegistry returns an empty permissive registry that knows only text
// leaves and the diff mark.
func NewRegistry() *Registry {
	r := &Registry{
		nodes: make(map[string]NodeSpec),
		marks: make(map[string]MarkSpec),
	}
	r.AddNode(NodeSpec{Name: TextType, Inline: true})
	r.AddMark(MarkSpec{Name: DiffMarkType, Attrs: map[string]AttrSpec{"type": {Required: true}}})
	return r
}

// AddNode registers a node type, replacing any previous spec of that name.
func (r *Registry) AddNode(spec NodeSpec) *Registry {
	r.nodes[spec.Name] = spec
	return r
}

// AddMark registers a mark type, replacing any previous spec of that name.
func (r *Registry) AddMark(spec MarkSpec) *Registry {
	r.marks[spec.Name] = spec
	return r
}

// Strict returns a copy of the registry that rejects anything it does not know.
func (r *Registry) Strict() *Registry {
	return &Registry{
		nodes:  maps.Clone(r.nodes),
		marks:  maps.Clone(r.marks),
		strict: true,
	}
}

// IsStrict reports whether the registry rejects unknown types.
func (r *Registry) IsStrict() bool {
	return r.strict
}

// NodeSpec returns the spec of a node type.
func (r *Registry) NodeSpec(name string) (NodeSpec, bool) {
	spec, ok := r.nodes[name]
	return spec, ok
}

// MarkSpec returns the spec of a mark type.
func (r *Registry) MarkSpec(name string) (MarkSpec, bool) {
	spec, ok := r.marks[name]
	return spec, ok
}

// NodeTypes returns the registered node type names, sorted.
func (r *Registry) NodeTypes() []string {
	return slices.Sorted(maps.Keys(r.nodes))
}

// MarkTypes returns the registered mark type names, sorted.
func (r *Registry) MarkTypes() []string {
	return slices.Sorted(maps.Keys(r.marks))
}

// NewText implements Schema. Marks are checked against the registry and
// copied; the caller's slice is not retained.
func (r *Registry) NewText(text string, marks []Mark) (*Node, error) {
	if r.strict {
		if _, ok := r.nodes[TextType]; !ok {
			return nil, &docerrors.SchemaError{Kind: "node", Name: TextType, Message: "unknown node type"}
		}
		for _, m := range marks {
			if err := r.checkMark(m); err != nil {
				return nil, err
			}
		}
	}
	var copied []Mark
	if len(marks) > 0 {
		copied = slices.Clone(marks)
	}
	return &Node{Kind: KindText, Type: TextType, Text: text, Marks: copied}, nil
}

// NewMark implements Schema. Attributes are copied, with defaults filled in
// for known mark types.
func (r *Registry) NewMark(markType string, attrs Attrs) (Mark, error) {
	if markType == "" {
		return Mark{}, &docerrors.SchemaError{Kind: "mark", Message: "mark type is empty"}
	}
	spec, known := r.marks[markType]
	if !known {
		if r.strict {
			return Mark{}, &docerrors.SchemaError{Kind: "mark", Name: markType, Message: "unknown mark type"}
		}
		return Mark{Type: markType, Attrs: attrs.Clone()}, nil
	}
	filled, err := r.fillAttrs("mark", markType, spec.Attrs, attrs)
	if err != nil {
		return Mark{}, err
	}
	return Mark{Type: markType, Attrs: filled}, nil
}

func (r *Registry) fillAttrs(kind, name string, specs map[string]AttrSpec, attrs Attrs) (Attrs, error) {
	out := attrs.Clone()
	if r.strict {
		for key := range attrs {
			if _, ok := specs[key]; !ok {
				return nil, &docerrors.SchemaError{Kind: kind, Name: name, Attr: key, Message: "unknown attribute"}
			}
		}
	}
	for key, spec := range specs {
		if _, ok := out[key]; ok {
			continue
		}
		if spec.Required && r.strict {
			return nil, &docerrors.SchemaError{Kind: kind, Name: name, Attr: key, Message: "required attribute missing"}
		}
		if spec.Default == nil {
			continue
		}
		if out == nil {
			out = make(Attrs, len(specs))
		}
		out[key] = cloneValue(spec.Default)
	}
	return out, nil
}

func (r *Registry) checkMark(m Mark) error {
	spec, ok := r.marks[m.Type]
	if !ok {
		if r.strict {
			return &docerrors.SchemaError{Kind: "mark", Name: m.Type, Message: "unknown mark type"}
		}
		return nil
	}
	return r.checkAttrs("mark", m.Type, spec.Attrs, m.Attrs)
}

func (r *Registry) checkAttrs(kind, name string, specs map[string]AttrSpec, attrs Attrs) error {
	if !r.strict {
		return nil
	}
	for key, spec := range specs {
		if _, ok := attrs[key]; !ok && spec.Required {
			return &docerrors.SchemaError{Kind: kind, Name: name, Attr: key, Message: "required attribute missing"}
		}
	}
	for key := range attrs {
		if _, ok := specs[key]; !ok {
			return &docerrors.SchemaError{Kind: kind, Name: name, Attr: key, Message: "unknown attribute"}
		}
	}
	return nil
}

// Validate implements Validator. It checks every node and mark in the tree
// and reports the first problem with its location.
func (r *Registry) Validate(root *Node) error {
	return r.validate(root, "$")
}

func (r *Registry) validate(n *Node, path string) error {
	if n == nil {
		return fmt.Errorf("schema error at %s: nil node", path)
	}
	spec, ok := r.nodes[n.Type]
	if !ok && r.strict {
		return fmt.Errorf("at %s: %w", path, &docerrors.SchemaError{Kind: "node", Name: n.Type, Message: "unknown node type"})
	}
	if ok {
		if err := r.checkAttrs("node", n.Type, spec.Attrs, n.Attrs); err != nil {
			return fmt.Errorf("at %s: %w", path, err)
		}
	}
	for i, m := range n.Marks {
		if err := r.checkMark(m); err != nil {
			return fmt.Errorf("at %s.marks[%d]: %w", path, i, err)
		}
	}
	for i, c := range n.Content {
		if err := r.validate(c, path+".content["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}
	return nil
}

// DefaultSchema returns a permissive registry with the ProseMirror basic
// schema, the common ProseMirror list and table types, the TipTap names for
// the same nodes and marks, and the diff mark. Each call returns a new
// registry.
func DefaultSchema() *Registry {
	r := NewRegistry()

	for _, name := range []string{
		"doc", "paragraph", "blockquote",
		"horizontal_rule", "horizontalRule",
		"bullet_list", "bulletList",
		"list_item", "listItem",
		"table", "table_row", "tableRow",
		"taskList",
	} {
		r.AddNode(NodeSpec{Name: name})
	}
	for _, name := range []string{"hard_break", "hardBreak"} {
		r.AddNode(NodeSpec{Name: name, Inline: true})
	}

	r.AddNode(NodeSpec{Name: "heading", Attrs: map[string]AttrSpec{"level": {Default: 1}}})
	for _, name := range []string{"code_block", "codeBlock"} {
		r.AddNode(NodeSpec{Name: name, Attrs: map[string]AttrSpec{"language": {}, "params": {}}})
	}
	for _, name := range []string{"ordered_list", "orderedList"} {
		r.AddNode(NodeSpec{Name: name, Attrs: map[string]AttrSpec{"order": {}, "start": {}, "type": {}}})
	}
	for _, name := range []string{"table_cell", "tableCell", "table_header", "tableHeader"} {
		r.AddNode(NodeSpec{Name: name, Attrs: map[string]AttrSpec{
			"colspan": {Default: 1}, "rowspan": {Default: 1}, "colwidth": {},
		}})
	}
	r.AddNode(NodeSpec{Name: "taskItem", Attrs: map[string]AttrSpec{"checked": {Default: false}}})
	r.AddNode(NodeSpec{Name: "image", Inline: true, Attrs: map[string]AttrSpec{
		"src": {Required: true}, "alt": {}, "title": {},
	}})

	for _, name := range []string{
		"bold", "strong", "italic", "em", "code",
		"strike", "underline", "subscript", "superscript",
	} {
		r.AddMark(MarkSpec{Name: name})
	}
	r.AddMark(MarkSpec{Name: "link", Attrs: map[string]AttrSpec{
		"href": {Required: true}, "title": {}, "target": {}, "rel": {}, "class": {},
	}})
	r.AddMark(MarkSpec{Name: "textStyle", Attrs: map[string]AttrSpec{"color": {}, "fontFamily": {}}})
	r.AddMark(MarkSpec{Name: "highlight", Attrs: map[string]AttrSpec{"color": {}}})

	return r
}
