// Package dom is an in-memory live tree and the default vdom.Adapter.
//
// Nodes live in an arena owned by a Document and are addressed by
// vdom.Handle. Handles stay valid for the lifetime of the Document: a
// removed node is detached, not freed, so a description that still refers
// to it can be inspected.
//
// Besides the primitive operations the engine needs, a Document supports
// the element-level operations plugins use (attributes, properties, style,
// class list, event listeners), an optional mutation log, and two views of
// the live tree: OuterHTML and an indented Outline.
//
//	doc := dom.NewDocument(dom.WithMutationLog())
//	root, _ := doc.CreateElement("div")
//	doc.AppendChild(doc.Body(), root)
//	eng := vdom.New(doc)
//	eng.PatchHandle(root, vdom.H("div#app", "hello"))
//	fmt.Println(doc.OuterHTML(doc.Body()))
//	// <body><div id="app">hello</div></body>
package dom
