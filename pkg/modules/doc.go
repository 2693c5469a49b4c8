// Package modules provides plugins that keep auxiliary node state in sync
// with node descriptions.
//
// Each constructor returns a vdom.Module bound to a Target, the
// element-level operations of the live tree (dom.Document implements it):
//
//	doc := dom.NewDocument()
//	eng := vdom.New(doc, vdom.WithModules(
//	    modules.Class(doc),
//	    modules.Props(doc),
//	    modules.Attributes(doc),
//	    modules.Style(doc),
//	    modules.Dataset(doc),
//	    modules.EventListeners(doc),
//	))
//
// Metrics and Tracing observe passes rather than nodes; they need no Target.
package modules
