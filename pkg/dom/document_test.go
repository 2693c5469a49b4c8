package dom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/treepatch/internal/errors"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

func mustElement(t *testing.T, d *Document, tag string) vdom.Handle {
	t.Helper()
	h, err := d.CreateElement(tag)
	if err != nil {
		t.Fatalf("CreateElement(%q) error = %v", tag, err)
	}
	return h
}

func mustAppend(t *testing.T, d *Document, parent, child vdom.Handle) {
	t.Helper()
	if err := d.AppendChild(parent, child); err != nil {
		t.Fatalf("AppendChild(%d, %d) error = %v", parent, child, err)
	}
}

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	if d.Body() == vdom.NoHandle {
		t.Fatal("body handle is NoHandle")
	}
	if got := d.TagName(d.Body()); got != "body" {
		t.Errorf("body tag = %q", got)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestCreateNodes(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "div")
	svg, err := d.CreateElementNS(vdom.SVGNamespace, "svg")
	if err != nil {
		t.Fatal(err)
	}
	txt, _ := d.CreateTextNode("hi")
	com, _ := d.CreateComment("note")

	tests := []struct {
		name string
		h    vdom.Handle
		typ  NodeType
		tag  string
		ns   string
	}{
		{"element", el, ElementNode, "div", ""},
		{"svg", svg, ElementNode, "svg", vdom.SVGNamespace},
		{"text", txt, TextNode, "", ""},
		{"comment", com, CommentNode, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.NodeType(tt.h); got != tt.typ {
				t.Errorf("NodeType = %v, want %v", got, tt.typ)
			}
			if got := d.TagName(tt.h); got != tt.tag {
				t.Errorf("TagName = %q, want %q", got, tt.tag)
			}
			if got := d.Namespace(tt.h); got != tt.ns {
				t.Errorf("Namespace = %q, want %q", got, tt.ns)
			}
			if got := d.ParentNode(tt.h); got != vdom.NoHandle {
				t.Errorf("new node has parent %d", got)
			}
		})
	}

	if got := d.TextContent(txt); got != "hi" {
		t.Errorf("TextContent(text) = %q", got)
	}
}

func TestCreateElementRejectsInvalidTags(t *testing.T) {
	d := NewDocument()
	for _, tag := range []string{"", "a b", "div\n"} {
		if _, err := d.CreateElement(tag); !errors.HasCode(err, "E005") {
			t.Errorf("CreateElement(%q) error = %v, want E005", tag, err)
		}
	}
}

func TestTreeOperations(t *testing.T) {
	d := NewDocument()
	ul := mustElement(t, d, "ul")
	a := mustElement(t, d, "li")
	b := mustElement(t, d, "li")
	c := mustElement(t, d, "li")
	mustAppend(t, d, d.Body(), ul)
	mustAppend(t, d, ul, a)
	mustAppend(t, d, ul, c)

	if err := d.InsertBefore(ul, b, c); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vdom.Handle{a, b, c}, d.ChildNodes(ul)); diff != "" {
		t.Errorf("after InsertBefore (-want +got):\n%s", diff)
	}
	if d.NextSibling(a) != b || d.PreviousSibling(c) != b || d.FirstChild(ul) != a {
		t.Error("sibling links are wrong")
	}

	// Moving an attached node relocates it.
	if err := d.InsertBefore(ul, c, a); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vdom.Handle{c, a, b}, d.ChildNodes(ul)); diff != "" {
		t.Errorf("after move (-want +got):\n%s", diff)
	}

	// Inserting a node before itself keeps it in place.
	if err := d.InsertBefore(ul, a, a); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vdom.Handle{c, a, b}, d.ChildNodes(ul)); diff != "" {
		t.Errorf("after self insert (-want +got):\n%s", diff)
	}

	if err := d.RemoveChild(ul, a); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vdom.Handle{c, b}, d.ChildNodes(ul)); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
	if d.ParentNode(a) != vdom.NoHandle || d.NextSibling(a) != vdom.NoHandle {
		t.Error("removed node keeps its links")
	}
	if !d.Contains(d.Body(), b) || d.Contains(d.Body(), a) {
		t.Error("Contains is wrong")
	}
}

func TestTreeErrors(t *testing.T) {
	d := NewDocument()
	parent := mustElement(t, d, "div")
	child := mustElement(t, d, "span")
	other := mustElement(t, d, "p")
	txt, _ := d.CreateTextNode("x")
	mustAppend(t, d, parent, child)

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unknown handle", d.AppendChild(parent, vdom.Handle(999)), "E001"},
		{"null handle", d.AppendChild(vdom.NoHandle, child), "E001"},
		{"remove non-child", d.RemoveChild(parent, other), "E002"},
		{"ref not a child", d.InsertBefore(parent, other, txt), "E002"},
		{"append into text", d.AppendChild(txt, other), "E003"},
		{"append into own descendant", d.AppendChild(child, parent), "E003"},
		{"append into self", d.AppendChild(parent, parent), "E003"},
		{"attribute on text", d.SetAttribute(txt, "id", "x"), "E004"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.HasCode(tt.err, tt.code) {
				t.Errorf("error = %v, want %s", tt.err, tt.code)
			}
		})
	}
}

func TestSetTextContent(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")
	mustAppend(t, d, div, mustElement(t, d, "b"))
	mustAppend(t, d, div, mustElement(t, d, "i"))

	if err := d.SetTextContent(div, "hello"); err != nil {
		t.Fatal(err)
	}
	if got := d.OuterHTML(div); got != "<div>hello</div>" {
		t.Errorf("OuterHTML = %q", got)
	}
	if err := d.SetTextContent(div, ""); err != nil {
		t.Fatal(err)
	}
	if got := len(d.ChildNodes(div)); got != 0 {
		t.Errorf("children after clearing = %d", got)
	}

	txt, _ := d.CreateTextNode("a")
	_ = d.SetTextContent(txt, "b")
	if got := d.TextContent(txt); got != "b" {
		t.Errorf("text payload = %q", got)
	}
}

func TestAttributesAndClasses(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "a")
	_ = d.SetAttribute(el, "href", "/x")
	_ = d.SetAttributeNS(el, "http://www.w3.org/1999/xlink", "xlink:href", "#y")
	_ = d.SetAttribute(el, "href", "/z")

	if v, ok := d.GetAttribute(el, "href"); !ok || v != "/z" {
		t.Errorf("href = %q, %v", v, ok)
	}
	if got := d.AttributeNS(el, "xlink:href"); got != "http://www.w3.org/1999/xlink" {
		t.Errorf("xlink namespace = %q", got)
	}
	if diff := cmp.Diff([]string{"href", "xlink:href"}, d.Attributes(el)); diff != "" {
		t.Errorf("attribute order (-want +got):\n%s", diff)
	}
	_ = d.RemoveAttribute(el, "href")
	_ = d.RemoveAttribute(el, "missing")
	if _, ok := d.GetAttribute(el, "href"); ok {
		t.Error("href still set")
	}

	_ = d.AddClass(el, "b")
	_ = d.AddClass(el, "a")
	_ = d.AddClass(el, "b")
	if diff := cmp.Diff([]string{"a", "b"}, d.ClassList(el)); diff != "" {
		t.Errorf("classes (-want +got):\n%s", diff)
	}
	_ = d.RemoveClass(el, "b")
	if v, _ := d.GetAttribute(el, "class"); v != "a" {
		t.Errorf("class = %q", v)
	}
}

func TestPropertiesAndStyle(t *testing.T) {
	d := NewDocument()
	in := mustElement(t, d, "input")
	_ = d.SetProperty(in, "value", "abc")
	if v, ok := d.GetProperty(in, "value"); !ok || v != "abc" {
		t.Errorf("value = %v, %v", v, ok)
	}
	_ = d.DeleteProperty(in, "value")
	if _, ok := d.GetProperty(in, "value"); ok {
		t.Error("value still set")
	}

	_ = d.SetStyle(in, "color", "red")
	_ = d.SetStyle(in, "margin", "0")
	_ = d.SetStyle(in, "color", "blue")
	if v, _ := d.GetStyle(in, "color"); v != "blue" {
		t.Errorf("color = %q", v)
	}
	if got := d.OuterHTML(in); got != `<input style="color: blue; margin: 0;">` {
		t.Errorf("OuterHTML = %q", got)
	}
	_ = d.RemoveStyle(in, "color")
	if _, ok := d.GetStyle(in, "color"); ok {
		t.Error("color still set")
	}
}

func TestEventsBubble(t *testing.T) {
	d := NewDocument()
	outer := mustElement(t, d, "div")
	inner := mustElement(t, d, "button")
	txt, _ := d.CreateTextNode("go")
	mustAppend(t, d, outer, inner)
	mustAppend(t, d, inner, txt)

	var got []string
	_, _ = d.AddEventListener(outer, "click", func(ev *vdom.Event) {
		got = append(got, "outer")
		if ev.Target != txt {
			t.Errorf("target = %d, want %d", ev.Target, txt)
		}
	})
	id, _ := d.AddEventListener(inner, "click", func(*vdom.Event) { got = append(got, "inner") })

	if n := d.Dispatch(txt, "click", nil); n != 2 {
		t.Errorf("Dispatch() = %d, want 2", n)
	}
	if diff := cmp.Diff([]string{"inner", "outer"}, got); diff != "" {
		t.Errorf("delivery order (-want +got):\n%s", diff)
	}

	_ = d.RemoveEventListener(inner, "click", id)
	if d.ListenerCount(inner, "click") != 0 {
		t.Error("listener not removed")
	}
	if n := d.Dispatch(inner, "keydown", nil); n != 0 {
		t.Errorf("Dispatch(keydown) = %d", n)
	}
}

func TestMutationLog(t *testing.T) {
	d := NewDocument(WithMutationLog())
	div := mustElement(t, d, "div")
	txt, _ := d.CreateTextNode("x")
	mustAppend(t, d, div, txt)
	mustAppend(t, d, d.Body(), div)
	_ = d.SetAttribute(div, "id", "a")
	_ = d.RemoveChild(div, txt)

	var ops []string
	for _, m := range d.Mutations() {
		ops = append(ops, m.Op.String())
	}
	want := []string{"Create", "Create", "Insert", "Insert", "SetAttr", "Remove"}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops (-want +got):\n%s", diff)
	}
	if got := d.CountMutations(OpCreate, OpRemove); got != 3 {
		t.Errorf("CountMutations(Create, Remove) = %d", got)
	}
	if got := d.Mutations()[4].String(); got != `SetAttr #2 id="a"` {
		t.Errorf("mutation string = %q", got)
	}

	d.ResetMutations()
	if d.CountMutations() != 0 {
		t.Error("log not reset")
	}

	quiet := NewDocument()
	_, _ = quiet.CreateElement("p")
	if quiet.CountMutations() != 0 {
		t.Error("document without a log recorded mutations")
	}
}

func TestSerialize(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")
	_ = d.SetAttribute(div, "title", `say "hi" & <bye>`)
	br := mustElement(t, d, "br")
	txt, _ := d.CreateTextNode("a < b & c")
	com, _ := d.CreateComment("c")
	mustAppend(t, d, div, txt)
	mustAppend(t, d, div, br)
	mustAppend(t, d, div, com)

	want := `<div title="say &quot;hi&quot; &amp; &lt;bye&gt;">a &lt; b &amp; c<br><!--c--></div>`
	if got := d.OuterHTML(div); got != want {
		t.Errorf("OuterHTML =\n%s\nwant\n%s", got, want)
	}
	if got := d.InnerHTML(div); !strings.HasPrefix(got, "a &lt; b") {
		t.Errorf("InnerHTML = %q", got)
	}
	if d.OuterHTML(vdom.Handle(999)) != "" {
		t.Error("unknown handle should serialize to empty string")
	}
}

func TestOutline(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")
	_ = d.SetAttribute(div, "id", "app")
	_ = d.SetAttribute(div, "class", "a b")
	p := mustElement(t, d, "p")
	txt, _ := d.CreateTextNode("hello")
	com, _ := d.CreateComment("note")
	mustAppend(t, d, div, p)
	mustAppend(t, d, p, txt)
	mustAppend(t, d, div, com)

	out := d.Outline(div)
	for _, want := range []string{
		"#2 div#app.a.b",
		"#3 p",
		`#4 "hello"`,
		"#5 <!--note-->",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("outline missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 4 {
		t.Errorf("outline has %d lines, want 4:\n%s", len(lines), out)
	}
}
