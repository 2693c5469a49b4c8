// Package treepatch reconciles node descriptions into a live tree with the
// smallest set of mutations.
//
// This is the recommended import for most callers:
//
//	import "github.com/vango-dev/treepatch"
//
// Usage:
//
//	eng, doc := treepatch.New()
//	mount, _ := doc.CreateElement("div")
//	doc.AppendChild(doc.Body(), mount)
//
//	cur, err := eng.PatchHandle(mount, treepatch.H("ul",
//	    treepatch.H("li", treepatch.Key("a"), "first"),
//	))
//	...
//	cur, err = eng.Patch(cur, treepatch.H("ul",
//	    treepatch.H("li", treepatch.Key("b"), "second"),
//	    treepatch.H("li", treepatch.Key("a"), "first"),
//	))
//
// The core engine lives in pkg/vdom, the default in-memory tree in pkg/dom,
// and the plugins in pkg/modules.
package treepatch

import (
	"github.com/vango-dev/treepatch/pkg/dom"
	"github.com/vango-dev/treepatch/pkg/modules"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

// =============================================================================
// Core types (re-exported from pkg/vdom)
// =============================================================================

// VNode describes one node of the desired tree.
type VNode = vdom.VNode

// Data holds the auxiliary properties of a node.
type Data = vdom.Data

// Style is the inline style of an element.
type Style = vdom.Style

// Hooks are per-node lifecycle callbacks.
type Hooks = vdom.Hooks

// Module is a plugin observing every node.
type Module = vdom.Module

// Engine reconciles descriptions into a live tree.
type Engine = vdom.Engine

// =============================================================================
// Builders
// =============================================================================

// H builds a node description. See vdom.H.
func H(sel string, args ...any) *VNode { return vdom.H(sel, args...) }

// Text creates a bare text node.
func Text(content string) *VNode { return vdom.Text(content) }

// Comment creates a comment node.
func Comment(content string) *VNode { return vdom.Comment(content) }

// Key creates a key argument for H.
func Key(key any) vdom.KeyArg { return vdom.Key(key) }

// Thunk describes a memoized subtree. See vdom.Thunk.
func Thunk(sel, key string, fn func(args ...any) *VNode, args ...any) *VNode {
	return vdom.Thunk(sel, key, fn, args...)
}

// =============================================================================
// Engine construction
// =============================================================================

// DefaultModules returns the standard plugins bound to doc, in the order
// they run: class, props, attributes, style, dataset, event listeners.
func DefaultModules(doc *dom.Document) []vdom.Module {
	return []vdom.Module{
		modules.Class(doc),
		modules.Props(doc),
		modules.Attributes(doc),
		modules.Style(doc),
		modules.Dataset(doc),
		modules.EventListeners(doc),
	}
}

// New creates an empty in-memory document and an engine over it with the
// standard plugins. Options are applied after the defaults, so modules
// passed with vdom.WithModules run after the standard ones.
func New(opts ...vdom.Option) (*vdom.Engine, *dom.Document) {
	return NewWithDocument(dom.NewDocument(), opts...)
}

// NewWithDocument is New for an existing document.
func NewWithDocument(doc *dom.Document, opts ...vdom.Option) (*vdom.Engine, *dom.Document) {
	all := append([]vdom.Option{vdom.WithModules(DefaultModules(doc)...)}, opts...)
	return vdom.New(doc, all...), doc
}
