package dom

import (
	"strings"

	"github.com/vango-dev/treepatch/internal/errors"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

// NodeType is the kind of a live node.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

type attr struct {
	ns    string
	name  string
	value string
}

type styleProp struct {
	name  string
	value string
}

type listener struct {
	id int
	fn func(*vdom.Event)
}

// node is one arena slot.
type node struct {
	typ  NodeType
	tag  string
	ns   string
	data string // text and comment payload

	attrs     []attr
	props     map[string]any
	style     []styleProp
	listeners map[string][]listener

	parent, first, last, prev, next vdom.Handle
}

// Document owns the arena of live nodes.
type Document struct {
	nodes      []node // nodes[0] is the null slot
	body       vdom.Handle
	log        []Mutation
	logging    bool
	listenerID int
}

// Option configures a Document.
type Option func(*Document)

// WithMutationLog records every mutation; see Mutations.
func WithMutationLog() Option {
	return func(d *Document) {
		d.logging = true
	}
}

// NewDocument creates an empty document with a body element.
func NewDocument(opts ...Option) *Document {
	d := &Document{nodes: make([]node, 1, 64)}
	d.body = d.alloc(node{typ: ElementNode, tag: "body"})
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Body returns the document's body element.
func (d *Document) Body() vdom.Handle {
	return d.body
}

// Len returns the number of nodes ever created, including detached ones.
func (d *Document) Len() int {
	return len(d.nodes) - 1
}

func (d *Document) alloc(n node) vdom.Handle {
	d.nodes = append(d.nodes, n)
	return vdom.Handle(len(d.nodes) - 1)
}

// get returns the node for h, or an E001 error.
func (d *Document) get(op string, h vdom.Handle) (*node, error) {
	if h == vdom.NoHandle || int(h) >= len(d.nodes) {
		return nil, errors.New("E001").WithOp(op).WithNode(uint32(h))
	}
	return &d.nodes[h], nil
}

// element returns the element for h, or an E001/E004 error.
func (d *Document) element(op string, h vdom.Handle) (*node, error) {
	n, err := d.get(op, h)
	if err != nil {
		return nil, err
	}
	if n.typ != ElementNode {
		return nil, errors.New("E004").WithOp(op).WithNode(uint32(h))
	}
	return n, nil
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) (vdom.Handle, error) {
	return d.CreateElementNS("", tag)
}

// CreateElementNS creates a detached element in namespace ns.
func (d *Document) CreateElementNS(ns, tag string) (vdom.Handle, error) {
	if tag == "" || strings.ContainsAny(tag, " \t\n\r\f") {
		return vdom.NoHandle, errors.New("E005").WithOp("CreateElement").WithDetail("tag " + tag)
	}
	h := d.alloc(node{typ: ElementNode, tag: tag, ns: ns})
	d.record(Mutation{Op: OpCreate, Node: h, Name: tag})
	return h, nil
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) (vdom.Handle, error) {
	h := d.alloc(node{typ: TextNode, data: text})
	d.record(Mutation{Op: OpCreate, Node: h, Name: "#text", Value: text})
	return h, nil
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(text string) (vdom.Handle, error) {
	h := d.alloc(node{typ: CommentNode, data: text})
	d.record(Mutation{Op: OpCreate, Node: h, Name: "#comment", Value: text})
	return h, nil
}

// NodeType returns the type of h, or 0 for an unknown handle.
func (d *Document) NodeType(h vdom.Handle) NodeType {
	n, err := d.get("NodeType", h)
	if err != nil {
		return 0
	}
	return n.typ
}

// TagName returns the element's tag as created, or "" for non-elements.
func (d *Document) TagName(h vdom.Handle) string {
	n, err := d.get("TagName", h)
	if err != nil || n.typ != ElementNode {
		return ""
	}
	return n.tag
}

// Namespace returns the namespace the element was created in.
func (d *Document) Namespace(h vdom.Handle) string {
	n, err := d.get("Namespace", h)
	if err != nil {
		return ""
	}
	return n.ns
}

var _ vdom.Adapter = (*Document)(nil)
