package vdom

// Walk visits v and its descendants depth-first, parents first.
// Returning false from fn skips the node's children.
func Walk(v *VNode, fn func(*VNode) bool) {
	if v == nil || !fn(v) {
		return
	}
	for _, ch := range v.Children {
		Walk(ch, fn)
	}
}
