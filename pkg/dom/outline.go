package dom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/treepatch/pkg/vdom"
	"github.com/xlab/treeprint"
)

// Outline renders h and its subtree as an indented tree, one node per line,
// labeled with the node's handle.
func (d *Document) Outline(h vdom.Handle) string {
	if _, err := d.get("Outline", h); err != nil {
		return ""
	}
	tree := treeprint.NewWithRoot(d.label(h))
	d.outline(tree, h)
	return tree.String()
}

func (d *Document) outline(branch treeprint.Tree, h vdom.Handle) {
	for c := d.nodes[h].first; c != vdom.NoHandle; c = d.nodes[c].next {
		if d.nodes[c].first == vdom.NoHandle {
			branch.AddNode(d.label(c))
			continue
		}
		d.outline(branch.AddBranch(d.label(c)), c)
	}
}

func (d *Document) label(h vdom.Handle) string {
	n := &d.nodes[h]
	switch n.typ {
	case TextNode:
		return fmt.Sprintf("#%d %q", h, n.data)
	case CommentNode:
		return fmt.Sprintf("#%d <!--%s-->", h, n.data)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", h, n.tag)
	if id, ok := d.GetAttribute(h, "id"); ok {
		b.WriteString("#" + id)
	}
	for _, c := range strings.Fields(d.attrValue(h, "class")) {
		b.WriteString("." + c)
	}
	return b.String()
}

func (d *Document) attrValue(h vdom.Handle, name string) string {
	v, _ := d.GetAttribute(h, name)
	return v
}
