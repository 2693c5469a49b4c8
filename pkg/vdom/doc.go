// Package vdom reconciles node descriptions into a live tree.
//
// A VNode describes one node of the desired tree. The Engine compares a
// previous description with a new one and applies the smallest set of
// mutations to the live tree behind it, reusing live nodes wherever the
// identity rule allows so that state attached to them (listeners, focus,
// plugin state) survives.
//
// # Core Types
//
// VNode carries a selector, a typed Data bag, either text or children, an
// optional Key, and the Handle of its live node. The live tree itself is
// reached only through an Adapter; see package dom for the default one.
//
// # Building Descriptions
//
//	H("ul#list",
//	    H("li", Key(1), "one"),
//	    H("li", Key(2), "two"),
//	)
//
// # Identity
//
// Two descriptions denote the same logical node when their kind, selector,
// and key are equal. Matching nodes are patched in place; anything else is
// built fresh and the old node is torn down.
//
// # Lifecycle
//
// Plugins (Module) and per-node Hooks observe creation, update, removal,
// and destruction. Insert hooks run only after the whole pass has attached
// every new node. Removal waits for one acknowledgement from each plugin
// with a Remove slot plus one from the node itself (see Removal).
package vdom
