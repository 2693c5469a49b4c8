package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindText    VKind = iota // Bare text leaf
	KindElement              // <div>, <svg>, etc.
	KindComment              // <!-- ... -->
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Content says which of Text or Children a node carries.
type Content uint8

const (
	ContentNone     Content = iota // Element with no content
	ContentText                    // Text is the payload
	ContentChildren                // Children is the payload (possibly empty)
)

// VNode describes one node of the desired tree.
//
// A VNode is immutable by convention once built. The only field the engine
// writes is Elm, which is set when the node is materialized and copied from
// the previous description during a patch.
type VNode struct {
	Kind     VKind    // Node type
	Sel      string   // Selector for elements: tag, optional #id, optional .classes
	Data     *Data    // Auxiliary data; nil for bare text leaves
	Children []*VNode // Child descriptions, used when Content is ContentChildren
	Text     string   // Text payload, used when Content is ContentText
	Content  Content  // Which payload applies
	Key      string   // Reconciliation key; empty means no key
	Elm      Handle   // Live node handle, NoHandle until materialized
}

// Data holds the recognized auxiliary properties of a node.
type Data struct {
	Props   map[string]any     // Element properties
	Attrs   map[string]any     // Attributes: string, number, or bool
	Class   map[string]bool    // Class toggles
	Style   *Style             // Inline style
	Dataset map[string]string  // data-* attributes, camelCase keys
	On      map[string]Handler // Event handlers by event type
	Hook    *Hooks             // Per-node lifecycle hooks
	NS      string             // Namespace URI for createElementNS

	// Fn and Args back thunks.
	Fn   func(args ...any) *VNode
	Args []any

	// Ext carries data for third-party modules.
	Ext map[string]any
}

// Style is the inline style of an element.
//
// Props is applied on create and update. Delayed is applied after the
// pass completes. Destroy is applied when the node is destroyed and Remove
// when it is removed.
type Style struct {
	Props   map[string]string
	Delayed map[string]string
	Remove  map[string]string
	Destroy map[string]string
}

// Event is delivered to event handlers by the live tree.
type Event struct {
	Type   string
	Target Handle
	Detail any
}

// Handler handles an event on the node that declared it.
type Handler func(ev *Event, v *VNode)

// Hooks are per-node lifecycle callbacks. Any of them may be nil.
type Hooks struct {
	// Init runs before the node is materialized and may rewrite the node.
	Init func(v *VNode)
	// Create runs after an element and its children are built.
	Create func(empty, v *VNode)
	// Insert runs once the node's whole new subtree is attached.
	Insert func(v *VNode)
	// Prepatch runs before old is reconciled into v.
	Prepatch func(old, v *VNode)
	// Update runs when v carries data, after plugin update hooks.
	Update func(old, v *VNode)
	// Postpatch runs after all content of v is reconciled.
	Postpatch func(old, v *VNode)
	// Remove must call rm.Done exactly once to let the node detach.
	Remove func(v *VNode, rm *Removal)
	// Destroy runs when the node or one of its ancestors is torn down.
	Destroy func(v *VNode)
}

// emptyNode is the placeholder "before" value for create hooks.
var emptyNode = &VNode{Kind: KindElement, Data: &Data{}, Content: ContentChildren}

// hooks returns the node's hooks or nil.
func (v *VNode) hooks() *Hooks {
	if v.Data == nil {
		return nil
	}
	return v.Data.Hook
}

func (v *VNode) hasText() bool {
	return v.Content == ContentText
}

func (v *VNode) hasChildren() bool {
	return v.Content == ContentChildren
}

// sameVNode reports whether a and b describe the same logical node.
func sameVNode(a, b *VNode) bool {
	return a.Key == b.Key && a.Kind == b.Kind && a.Sel == b.Sel
}

// sameChildren reports whether two child slices share the same backing array.
func sameChildren(a, b []*VNode) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
