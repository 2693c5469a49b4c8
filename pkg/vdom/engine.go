package vdom

import (
	"log/slog"
	"strings"
)

// Engine reconciles node descriptions into a live tree.
//
// An Engine holds no state between passes. Passes must not run
// concurrently against the same live tree.
type Engine struct {
	api     Adapter
	cbs     hookSlots
	modules []Module
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithModules registers plugins. Hooks of a phase run in registration order.
func WithModules(modules ...Module) Option {
	return func(e *Engine) {
		e.modules = append(e.modules, modules...)
	}
}

// WithLogger sets the logger used for per-pass debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine operating on api.
func New(api Adapter, opts ...Option) *Engine {
	e := &Engine{
		api:    api,
		logger: slog.Default().With("component", "vdom"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cbs = newHookSlots(e.modules)
	return e
}

// Adapter returns the adapter the engine mutates.
func (e *Engine) Adapter() Adapter {
	return e.api
}

// Patch reconciles the live tree behind old so that it matches next, and
// returns next, which now carries the live handle.
//
// If old and next are the same logical node the live node is patched in
// place; otherwise next is built from scratch, inserted after old's live
// node, and old is removed.
func (e *Engine) Patch(old, next *VNode) (*VNode, error) {
	p := &pass{Engine: e}
	for _, fn := range e.cbs.pre {
		if err := fn(); err != nil {
			return nil, err
		}
	}

	mode := "patch"
	if sameVNode(old, next) {
		if err := p.patchVnode(old, next); err != nil {
			return nil, err
		}
	} else {
		mode = "replace"
		elm := old.Elm
		parent := e.api.ParentNode(elm)

		if _, err := p.createElm(next); err != nil {
			return nil, err
		}
		if parent != NoHandle {
			if err := e.api.InsertBefore(parent, next.Elm, e.api.NextSibling(elm)); err != nil {
				return nil, err
			}
			if err := p.removeVnodes(parent, []*VNode{old}, 0, 0); err != nil {
				return nil, err
			}
		}
	}

	for _, v := range p.inserted {
		v.Data.Hook.Insert(v)
	}
	for _, fn := range e.cbs.post {
		if err := fn(); err != nil {
			return nil, err
		}
	}

	e.logger.Debug("pass complete",
		"mode", mode,
		"root", next.Elm,
		"inserted", len(p.inserted),
	)
	return next, nil
}

// PatchHandle reconciles an existing live node that has no description,
// such as pre-existing markup, into next.
func (e *Engine) PatchHandle(elm Handle, next *VNode) (*VNode, error) {
	return e.Patch(e.emptyNodeAt(elm), next)
}

// emptyNodeAt describes a live element by its tag, id, and classes.
func (e *Engine) emptyNodeAt(elm Handle) *VNode {
	var b strings.Builder
	b.WriteString(strings.ToLower(e.api.TagName(elm)))
	if id, ok := e.api.GetAttribute(elm, "id"); ok && id != "" {
		b.WriteString("#" + id)
	}
	if class, ok := e.api.GetAttribute(elm, "class"); ok && class != "" {
		b.WriteString("." + strings.Join(strings.Split(class, " "), "."))
	}
	return &VNode{
		Kind:    KindElement,
		Sel:     b.String(),
		Data:    &Data{},
		Content: ContentChildren,
		Elm:     elm,
	}
}

// pass carries the state of one Patch call.
type pass struct {
	*Engine
	inserted []*VNode
}
