package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/treepatch"
	"github.com/vango-dev/treepatch/pkg/dom"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

// Harness drives an engine over an in-memory document.
type Harness struct {
	t       testing.TB
	Doc     *dom.Document
	Engine  *vdom.Engine
	Current *vdom.VNode
}

// New creates a Harness. Options are passed to the engine after the
// standard plugins.
func New(t testing.TB, opts ...vdom.Option) *Harness {
	t.Helper()
	doc := dom.NewDocument(dom.WithMutationLog())
	eng, _ := treepatch.NewWithDocument(doc, opts...)
	return &Harness{t: t, Doc: doc, Engine: eng}
}

// Mount patches v over a fresh placeholder element under the body.
func (h *Harness) Mount(v *vdom.VNode) *vdom.VNode {
	h.t.Helper()
	placeholder, err := h.Doc.CreateElement("div")
	if err != nil {
		h.t.Fatalf("create placeholder: %v", err)
	}
	if err := h.Doc.AppendChild(h.Doc.Body(), placeholder); err != nil {
		h.t.Fatalf("attach placeholder: %v", err)
	}
	h.Doc.ResetMutations()
	cur, err := h.Engine.PatchHandle(placeholder, v)
	if err != nil {
		h.t.Fatalf("mount: %v", err)
	}
	h.Current = cur
	return cur
}

// Patch reconciles the current description into v.
func (h *Harness) Patch(v *vdom.VNode) *vdom.VNode {
	h.t.Helper()
	if h.Current == nil {
		h.t.Fatal("Patch called before Mount")
	}
	h.Doc.ResetMutations()
	cur, err := h.Engine.Patch(h.Current, v)
	if err != nil {
		h.t.Fatalf("patch: %v", err)
	}
	h.Current = cur
	return cur
}

// HTML serializes the live node of the current description.
func (h *Harness) HTML() string {
	if h.Current == nil {
		return ""
	}
	return h.Doc.OuterHTML(h.Current.Elm)
}

// BodyHTML serializes everything under the body.
func (h *Harness) BodyHTML() string {
	return h.Doc.InnerHTML(h.Doc.Body())
}

// ExpectHTML fails the test if the current live node does not serialize
// to want.
func (h *Harness) ExpectHTML(want string) {
	h.t.Helper()
	if got := h.HTML(); got != want {
		h.t.Errorf("HTML mismatch\n got: %s\nwant: %s", got, want)
	}
}

// ExpectMutations fails the test if the last pass did not record exactly
// want mutations of the given ops (all ops when none are given).
func (h *Harness) ExpectMutations(want int, ops ...dom.MutationOp) {
	h.t.Helper()
	if got := h.Doc.CountMutations(ops...); got != want {
		var lines []string
		for _, m := range h.Doc.Mutations() {
			lines = append(lines, "  "+m.String())
		}
		h.t.Errorf("mutations = %d, want %d\n%s", got, want, strings.Join(lines, "\n"))
	}
}

// Children returns the live children of the current node.
func (h *Harness) Children() []vdom.Handle {
	if h.Current == nil {
		return nil
	}
	return h.Doc.ChildNodes(h.Current.Elm)
}

// ExpectContains fails the test if the current HTML does not contain s.
func ExpectContains(t testing.TB, h *Harness, s string) {
	t.Helper()
	if !strings.Contains(h.HTML(), s) {
		t.Errorf("expected HTML to contain %q, got: %s", s, h.HTML())
	}
}

// ExpectNotContains fails the test if the current HTML contains s.
func ExpectNotContains(t testing.TB, h *Harness, s string) {
	t.Helper()
	if strings.Contains(h.HTML(), s) {
		t.Errorf("expected HTML not to contain %q, got: %s", s, h.HTML())
	}
}
