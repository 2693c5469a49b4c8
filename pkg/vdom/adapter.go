package vdom

// Handle identifies a live node in the target tree's arena.
type Handle uint32

// NoHandle is the null handle.
const NoHandle Handle = 0

// Adapter performs primitive operations against a live tree.
//
// Mutating operations return an error when the tree rejects them; the
// engine returns such errors to the caller of Patch without retrying.
type Adapter interface {
	CreateElement(tag string) (Handle, error)
	CreateElementNS(ns, tag string) (Handle, error)
	CreateTextNode(text string) (Handle, error)
	CreateComment(text string) (Handle, error)

	// InsertBefore inserts node into parent before ref, or appends it when
	// ref is NoHandle. A node already in the tree is moved.
	InsertBefore(parent, node, ref Handle) error
	RemoveChild(parent, node Handle) error
	AppendChild(parent, node Handle) error

	ParentNode(node Handle) Handle
	NextSibling(node Handle) Handle
	TagName(node Handle) string
	SetTextContent(node Handle, text string) error

	SetAttribute(node Handle, name, value string) error
	GetAttribute(node Handle, name string) (string, bool)
}
