package dom

import (
	"strings"

	"github.com/vango-dev/treepatch/pkg/vdom"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// OuterHTML serializes h and its subtree. Inline styles are written as a
// style attribute; properties and listeners are not serialized.
func (d *Document) OuterHTML(h vdom.Handle) string {
	if _, err := d.get("OuterHTML", h); err != nil {
		return ""
	}
	var b strings.Builder
	d.writeHTML(&b, h)
	return b.String()
}

// InnerHTML serializes the children of h.
func (d *Document) InnerHTML(h vdom.Handle) string {
	if _, err := d.get("InnerHTML", h); err != nil {
		return ""
	}
	var b strings.Builder
	for c := d.nodes[h].first; c != vdom.NoHandle; c = d.nodes[c].next {
		d.writeHTML(&b, c)
	}
	return b.String()
}

func (d *Document) writeHTML(b *strings.Builder, h vdom.Handle) {
	n := &d.nodes[h]
	switch n.typ {
	case TextNode:
		b.WriteString(escapeHTML(n.data))
		return
	case CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.data)
		b.WriteString("-->")
		return
	}

	b.WriteByte('<')
	b.WriteString(n.tag)
	for _, a := range n.attrs {
		if a.name == "style" && len(n.style) > 0 {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.value))
		b.WriteByte('"')
	}
	if len(n.style) > 0 {
		b.WriteString(` style="`)
		for i, s := range n.style {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(escapeAttr(s.name + ": " + s.value + ";"))
		}
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidElements[n.tag] && n.first == vdom.NoHandle {
		return
	}
	for c := n.first; c != vdom.NoHandle; c = d.nodes[c].next {
		d.writeHTML(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for inclusion in a double-quoted attribute value.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\n':
			buf.WriteString("&#10;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
