package vdom

import (
	"fmt"
	"strconv"
)

// SVGNamespace is the namespace H assigns to svg subtrees.
const SVGNamespace = "http://www.w3.org/2000/svg"

// CommentSel is the selector H treats as a comment node.
const CommentSel = "!"

// KeyArg is a reconciliation key passed to H.
type KeyArg string

// Key creates a key argument for H.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) KeyArg {
	return KeyArg(fmt.Sprintf("%v", key))
}

// H builds a node description from a selector and arguments.
// Arguments can be: nil, *Data, KeyArg, *VNode, []*VNode, string, or a number.
//
// A single string or number with no other content becomes the node's text.
// Otherwise strings and numbers become text children, in argument order.
// Passing a []*VNode always yields a children list, even when empty.
// Selectors whose tag is "svg" get SVGNamespace on the whole subtree,
// except below foreignObject.
func H(sel string, args ...any) *VNode {
	node := &VNode{Kind: KindElement, Sel: sel}
	if sel == CommentSel {
		node.Kind = KindComment
	}

	var (
		items   []any
		hasList bool
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue
		case *Data:
			if v != nil {
				node.Data = v
			}
		case KeyArg:
			node.Key = string(v)
		case *VNode:
			if v != nil {
				items = append(items, v)
			}
		case []*VNode:
			hasList = true
			for _, c := range v {
				if c != nil {
					items = append(items, c)
				}
			}
		default:
			if s, ok := primitive(arg); ok {
				items = append(items, s)
			}
		}
	}

	if node.Data == nil {
		node.Data = &Data{}
	}

	switch {
	case len(items) == 1 && !hasList && isString(items[0]):
		node.Text = items[0].(string)
		node.Content = ContentText
	case len(items) > 0 || hasList:
		node.Children = make([]*VNode, 0, len(items))
		for _, it := range items {
			switch c := it.(type) {
			case *VNode:
				node.Children = append(node.Children, c)
			case string:
				node.Children = append(node.Children, Text(c))
			}
		}
		node.Content = ContentChildren
	case node.Kind == KindComment:
		node.Content = ContentText
	}

	if node.Kind == KindElement && isSVGSelector(sel) {
		addNS(node.Data, node.Children, sel)
	}
	return node
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{
		Kind:    KindText,
		Text:    content,
		Content: ContentText,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Comment creates a comment node.
func Comment(content string) *VNode {
	return &VNode{
		Kind:    KindComment,
		Sel:     CommentSel,
		Data:    &Data{},
		Text:    content,
		Content: ContentText,
	}
}

// addNS assigns the SVG namespace to data and to every descendant that has
// data, stopping below foreignObject.
func addNS(data *Data, children []*VNode, sel string) {
	data.NS = SVGNamespace
	if sel == "foreignObject" {
		return
	}
	for _, ch := range children {
		if ch != nil && ch.Data != nil {
			addNS(ch.Data, ch.Children, ch.Sel)
		}
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// primitive formats strings and numbers; other values are rejected.
func primitive(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	default:
		return "", false
	}
}
