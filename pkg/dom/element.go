package dom

import (
	"sort"
	"strings"

	"github.com/vango-dev/treepatch/pkg/vdom"
)

// SetAttribute sets an attribute on an element.
func (d *Document) SetAttribute(h vdom.Handle, name, value string) error {
	return d.SetAttributeNS(h, "", name, value)
}

// SetAttributeNS sets a namespaced attribute on an element.
func (d *Document) SetAttributeNS(h vdom.Handle, ns, name, value string) error {
	n, err := d.element("SetAttribute", h)
	if err != nil {
		return err
	}
	d.record(Mutation{Op: OpSetAttr, Node: h, Name: name, Value: value})
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].ns = ns
			n.attrs[i].value = value
			return nil
		}
	}
	n.attrs = append(n.attrs, attr{ns: ns, name: name, value: value})
	return nil
}

// GetAttribute returns an attribute of an element.
func (d *Document) GetAttribute(h vdom.Handle, name string) (string, bool) {
	n, err := d.element("GetAttribute", h)
	if err != nil {
		return "", false
	}
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// AttributeNS returns the namespace an attribute was set with.
func (d *Document) AttributeNS(h vdom.Handle, name string) string {
	n, err := d.element("AttributeNS", h)
	if err != nil {
		return ""
	}
	for _, a := range n.attrs {
		if a.name == name {
			return a.ns
		}
	}
	return ""
}

// RemoveAttribute removes an attribute; removing a missing one is a no-op.
func (d *Document) RemoveAttribute(h vdom.Handle, name string) error {
	n, err := d.element("RemoveAttribute", h)
	if err != nil {
		return err
	}
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			d.record(Mutation{Op: OpRemoveAttr, Node: h, Name: name})
			return nil
		}
	}
	return nil
}

// Attributes returns the element's attribute names in insertion order.
func (d *Document) Attributes(h vdom.Handle) []string {
	n, err := d.element("Attributes", h)
	if err != nil {
		return nil
	}
	names := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		names[i] = a.name
	}
	return names
}

// SetProperty sets a property on an element.
func (d *Document) SetProperty(h vdom.Handle, name string, value any) error {
	n, err := d.element("SetProperty", h)
	if err != nil {
		return err
	}
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
	d.record(Mutation{Op: OpSetProp, Node: h, Name: name, Value: propString(value)})
	return nil
}

// GetProperty returns a property of an element.
func (d *Document) GetProperty(h vdom.Handle, name string) (any, bool) {
	n, err := d.element("GetProperty", h)
	if err != nil {
		return nil, false
	}
	v, ok := n.props[name]
	return v, ok
}

// DeleteProperty removes a property from an element.
func (d *Document) DeleteProperty(h vdom.Handle, name string) error {
	n, err := d.element("DeleteProperty", h)
	if err != nil {
		return err
	}
	if _, ok := n.props[name]; ok {
		delete(n.props, name)
		d.record(Mutation{Op: OpDeleteProp, Node: h, Name: name})
	}
	return nil
}

// SetStyle sets an inline style property.
func (d *Document) SetStyle(h vdom.Handle, name, value string) error {
	n, err := d.element("SetStyle", h)
	if err != nil {
		return err
	}
	d.record(Mutation{Op: OpSetStyle, Node: h, Name: name, Value: value})
	for i := range n.style {
		if n.style[i].name == name {
			n.style[i].value = value
			return nil
		}
	}
	n.style = append(n.style, styleProp{name: name, value: value})
	return nil
}

// GetStyle returns an inline style property.
func (d *Document) GetStyle(h vdom.Handle, name string) (string, bool) {
	n, err := d.element("GetStyle", h)
	if err != nil {
		return "", false
	}
	for _, s := range n.style {
		if s.name == name {
			return s.value, true
		}
	}
	return "", false
}

// RemoveStyle removes an inline style property.
func (d *Document) RemoveStyle(h vdom.Handle, name string) error {
	n, err := d.element("RemoveStyle", h)
	if err != nil {
		return err
	}
	for i, s := range n.style {
		if s.name == name {
			n.style = append(n.style[:i], n.style[i+1:]...)
			d.record(Mutation{Op: OpRemoveStyle, Node: h, Name: name})
			return nil
		}
	}
	return nil
}

// ClassList returns the element's classes, sorted.
func (d *Document) ClassList(h vdom.Handle) []string {
	class, _ := d.GetAttribute(h, "class")
	list := strings.Fields(class)
	sort.Strings(list)
	return list
}

// AddClass adds a class to the element's class attribute.
func (d *Document) AddClass(h vdom.Handle, name string) error {
	if _, err := d.element("AddClass", h); err != nil {
		return err
	}
	class, _ := d.GetAttribute(h, "class")
	list := strings.Fields(class)
	for _, c := range list {
		if c == name {
			return nil
		}
	}
	return d.SetAttribute(h, "class", strings.Join(append(list, name), " "))
}

// RemoveClass removes a class from the element's class attribute.
func (d *Document) RemoveClass(h vdom.Handle, name string) error {
	if _, err := d.element("RemoveClass", h); err != nil {
		return err
	}
	class, ok := d.GetAttribute(h, "class")
	if !ok {
		return nil
	}
	list := strings.Fields(class)
	kept := list[:0]
	for _, c := range list {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return d.SetAttribute(h, "class", strings.Join(kept, " "))
}
