package dom

import (
	"strings"

	"github.com/vango-dev/treepatch/internal/errors"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

// ParentNode returns the parent of h, or NoHandle.
func (d *Document) ParentNode(h vdom.Handle) vdom.Handle {
	n, err := d.get("ParentNode", h)
	if err != nil {
		return vdom.NoHandle
	}
	return n.parent
}

// NextSibling returns the sibling after h, or NoHandle.
func (d *Document) NextSibling(h vdom.Handle) vdom.Handle {
	n, err := d.get("NextSibling", h)
	if err != nil {
		return vdom.NoHandle
	}
	return n.next
}

// PreviousSibling returns the sibling before h, or NoHandle.
func (d *Document) PreviousSibling(h vdom.Handle) vdom.Handle {
	n, err := d.get("PreviousSibling", h)
	if err != nil {
		return vdom.NoHandle
	}
	return n.prev
}

// FirstChild returns the first child of h, or NoHandle.
func (d *Document) FirstChild(h vdom.Handle) vdom.Handle {
	n, err := d.get("FirstChild", h)
	if err != nil {
		return vdom.NoHandle
	}
	return n.first
}

// ChildNodes returns the children of h in order.
func (d *Document) ChildNodes(h vdom.Handle) []vdom.Handle {
	var out []vdom.Handle
	for c := d.FirstChild(h); c != vdom.NoHandle; c = d.nodes[c].next {
		out = append(out, c)
	}
	return out
}

// AppendChild moves node to the end of parent's children.
func (d *Document) AppendChild(parent, node vdom.Handle) error {
	return d.insert("AppendChild", parent, node, vdom.NoHandle)
}

// InsertBefore moves node into parent before ref; NoHandle appends.
func (d *Document) InsertBefore(parent, node, ref vdom.Handle) error {
	return d.insert("InsertBefore", parent, node, ref)
}

func (d *Document) insert(op string, parent, child, ref vdom.Handle) error {
	p, err := d.get(op, parent)
	if err != nil {
		return err
	}
	if _, err := d.get(op, child); err != nil {
		return err
	}
	if p.typ != ElementNode {
		return errors.New("E003").WithOp(op).WithNode(uint32(parent))
	}
	for a := parent; a != vdom.NoHandle; a = d.nodes[a].parent {
		if a == child {
			return errors.New("E003").WithOp(op).WithNode(uint32(child))
		}
	}
	if ref == child {
		ref = d.nodes[child].next
	}
	if ref != vdom.NoHandle {
		r, err := d.get(op, ref)
		if err != nil {
			return err
		}
		if r.parent != parent {
			return errors.New("E002").WithOp(op).WithNode(uint32(ref))
		}
	}

	d.detach(child)

	c := &d.nodes[child]
	c.parent = parent
	if ref == vdom.NoHandle {
		c.prev = p.last
		c.next = vdom.NoHandle
		if p.last != vdom.NoHandle {
			d.nodes[p.last].next = child
		} else {
			p.first = child
		}
		p.last = child
	} else {
		r := &d.nodes[ref]
		c.prev = r.prev
		c.next = ref
		if r.prev != vdom.NoHandle {
			d.nodes[r.prev].next = child
		} else {
			p.first = child
		}
		r.prev = child
	}

	d.record(Mutation{Op: OpInsert, Node: child, Parent: parent, Ref: ref})
	return nil
}

// RemoveChild detaches node from parent.
func (d *Document) RemoveChild(parent, node vdom.Handle) error {
	if _, err := d.get("RemoveChild", parent); err != nil {
		return err
	}
	n, err := d.get("RemoveChild", node)
	if err != nil {
		return err
	}
	if n.parent != parent {
		return errors.New("E002").WithOp("RemoveChild").WithNode(uint32(node))
	}
	d.detach(node)
	d.record(Mutation{Op: OpRemove, Node: node, Parent: parent})
	return nil
}

// detach unlinks h from its parent, if any.
func (d *Document) detach(h vdom.Handle) {
	n := &d.nodes[h]
	if n.parent == vdom.NoHandle {
		return
	}
	p := &d.nodes[n.parent]
	if n.prev != vdom.NoHandle {
		d.nodes[n.prev].next = n.next
	} else {
		p.first = n.next
	}
	if n.next != vdom.NoHandle {
		d.nodes[n.next].prev = n.prev
	} else {
		p.last = n.prev
	}
	n.parent, n.prev, n.next = vdom.NoHandle, vdom.NoHandle, vdom.NoHandle
}

// Contains reports whether h is node or one of its descendants.
func (d *Document) Contains(node, h vdom.Handle) bool {
	if _, err := d.get("Contains", h); err != nil {
		return false
	}
	for a := h; a != vdom.NoHandle; a = d.nodes[a].parent {
		if a == node {
			return true
		}
	}
	return false
}

// SetTextContent sets the payload of a text or comment node. On an element
// it replaces all children with a single text node, or none for "".
func (d *Document) SetTextContent(h vdom.Handle, text string) error {
	n, err := d.get("SetTextContent", h)
	if err != nil {
		return err
	}
	if n.typ != ElementNode {
		n.data = text
		d.record(Mutation{Op: OpSetText, Node: h, Value: text})
		return nil
	}

	for c := n.first; c != vdom.NoHandle; c = n.first {
		d.detach(c)
	}
	if text != "" {
		t := d.alloc(node{typ: TextNode, data: text})
		d.nodes[t].parent = h
		d.nodes[h].first = t
		d.nodes[h].last = t
	}
	d.record(Mutation{Op: OpSetText, Node: h, Value: text})
	return nil
}

// TextContent returns the payload of a text or comment node, or the
// concatenated text of an element's descendants.
func (d *Document) TextContent(h vdom.Handle) string {
	n, err := d.get("TextContent", h)
	if err != nil {
		return ""
	}
	if n.typ != ElementNode {
		return n.data
	}
	var b strings.Builder
	d.collectText(h, &b)
	return b.String()
}

func (d *Document) collectText(h vdom.Handle, b *strings.Builder) {
	for c := d.nodes[h].first; c != vdom.NoHandle; c = d.nodes[c].next {
		switch d.nodes[c].typ {
		case TextNode:
			b.WriteString(d.nodes[c].data)
		case ElementNode:
			d.collectText(c, b)
		}
	}
}
