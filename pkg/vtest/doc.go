// Package vtest provides testing helpers for code that reconciles trees.
//
// A Harness owns a fresh document with a mutation log and an engine with
// the standard plugins, mounts a first description, and then patches it
// step by step:
//
//	func TestList(t *testing.T) {
//	    h := vtest.New(t)
//	    h.Mount(vdom.H("ul", vdom.H("li", vdom.Key("a"), "A")))
//	    h.Patch(vdom.H("ul", vdom.H("li", vdom.Key("a"), "A!")))
//	    h.ExpectHTML(`<ul><li>A!</li></ul>`)
//	    h.ExpectMutations(1)
//	}
//
// Mount and Patch clear the mutation log before the pass, so counts always
// refer to the latest pass.
package vtest
