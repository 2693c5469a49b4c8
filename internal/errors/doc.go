// Package errors provides structured, coded errors for treepatch.
//
// Errors are produced by the target tree (invalid handles, hierarchy
// violations) and by the tree file loader. The reconciliation engine never
// creates errors of its own: it returns whatever the adapter or a plugin
// returned, unchanged.
//
// # Error Categories
//
//   - tree: the live tree rejected an operation
//   - input: a tree file could not be decoded or is malformed
//   - cli: command-line usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to a short message
// and a longer explanation:
//
//	err := errors.New("E002").WithNode(7)
//	fmt.Println(err)
//	// E002: Node is not a child of the given parent (node 7)
//
// Use the standard library's errors.As to recover the structured value and
// HasCode to test for a specific code anywhere in a wrapped chain.
package errors
