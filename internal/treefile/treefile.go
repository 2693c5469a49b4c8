// Package treefile decodes node descriptions from YAML or JSON documents.
//
// A document describes one root node:
//
//	sel: ul#list
//	children:
//	  - sel: li
//	    key: a
//	    text: first
//	  - sel: li
//	    key: b
//	    class: {active: true}
//	    children: ["second ", {sel: b, text: "!"}]
//
// A bare scalar in a children list is a text node, so [yes, 42] holds the
// texts "yes" and "42". {comment: "..."} is a comment node. Documents are
// read as YAML 1.2; JSON documents decode the same way.
package treefile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/vango-dev/treepatch/internal/errors"
	"github.com/vango-dev/treepatch/pkg/vdom"
	"gopkg.in/yaml.v3"
)

// Node is the file form of a node description.
type Node struct {
	Sel      string            `yaml:"sel,omitempty"`
	Key      any               `yaml:"key,omitempty"`
	Text     *string           `yaml:"text,omitempty"`
	Comment  *string           `yaml:"comment,omitempty"`
	NS       string            `yaml:"ns,omitempty"`
	Attrs    map[string]any    `yaml:"attrs,omitempty"`
	Props    map[string]any    `yaml:"props,omitempty"`
	Class    map[string]bool   `yaml:"class,omitempty"`
	Style    map[string]string `yaml:"style,omitempty"`
	Dataset  map[string]string `yaml:"dataset,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// UnmarshalYAML accepts any non-null scalar as a text node.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() != "!!null" {
		s := value.Value
		*n = Node{Text: &s}
		return nil
	}
	type plain Node
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = Node(p)
	return nil
}

// Load reads and decodes the tree file at path.
func Load(path string) (*vdom.VNode, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E020").WithDetail(path).Wrap(err)
	}
	v, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Decode decodes a YAML or JSON document into a node description.
func Decode(b []byte) (*vdom.VNode, error) {
	var n Node
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&n); err != nil {
		if err == io.EOF {
			return nil, errors.New("E021").WithDetail("empty document")
		}
		return nil, errors.New("E021").Wrap(err)
	}
	return n.Build()
}

// Build converts n into a node description.
func (n *Node) Build() (*vdom.VNode, error) {
	switch {
	case n.Comment != nil:
		if n.Sel != "" || n.Text != nil || len(n.Children) > 0 {
			return nil, errors.New("E022").WithDetail("comment nodes take no selector, text, or children")
		}
		v := vdom.Comment(*n.Comment)
		v.Key = keyString(n.Key)
		return v, nil

	case n.Sel == "":
		if n.Text == nil || len(n.Children) > 0 {
			return nil, errors.New("E022").WithDetail("nodes without a selector must be text")
		}
		v := vdom.Text(*n.Text)
		v.Key = keyString(n.Key)
		return v, nil

	case n.Text != nil && len(n.Children) > 0:
		return nil, errors.New("E022").WithDetail(n.Sel + " sets both text and children")
	}

	data := &vdom.Data{
		Attrs:   n.Attrs,
		Props:   n.Props,
		Class:   n.Class,
		Dataset: n.Dataset,
		NS:      n.NS,
	}
	if len(n.Style) > 0 {
		data.Style = &vdom.Style{Props: n.Style}
	}
	args := []any{data}
	if n.Key != nil {
		args = append(args, vdom.Key(n.Key))
	}
	switch {
	case n.Text != nil:
		args = append(args, *n.Text)
	case n.Children != nil:
		children := make([]*vdom.VNode, 0, len(n.Children))
		for i := range n.Children {
			ch, err := n.Children[i].Build()
			if err != nil {
				return nil, err
			}
			children = append(children, ch)
		}
		args = append(args, children)
	}
	return vdom.H(n.Sel, args...), nil
}

func keyString(k any) string {
	if k == nil {
		return ""
	}
	return string(vdom.Key(k))
}
