package modules

import "github.com/vango-dev/treepatch/pkg/vdom"

// EventListeners binds Data.On handlers. Each element gets one live
// listener per event type, which calls the handler of the element's
// current description; changing a handler does not touch the live tree.
func EventListeners(t Target) vdom.Module {
	m := &listenerModule{t: t, bindings: make(map[vdom.Handle]*binding)}
	return vdom.Module{
		Name:    "eventlisteners",
		Create:  m.update,
		Update:  m.update,
		Destroy: m.destroy,
	}
}

type binding struct {
	vnode *vdom.VNode
	ids   map[string]int
}

func (b *binding) handle(ev *vdom.Event) {
	v := b.vnode
	if h := dataOf(v).On[ev.Type]; h != nil {
		h(ev, v)
	}
}

type listenerModule struct {
	t        Target
	bindings map[vdom.Handle]*binding
}

func (m *listenerModule) update(old, v *vdom.VNode) error {
	on := dataOf(v).On
	elm := v.Elm
	b := m.bindings[elm]
	if b == nil && len(on) == 0 {
		return nil
	}

	if b != nil {
		for _, typ := range sortedKeys(b.ids) {
			if _, ok := on[typ]; ok {
				continue
			}
			if err := m.t.RemoveEventListener(elm, typ, b.ids[typ]); err != nil {
				return err
			}
			delete(b.ids, typ)
		}
	}
	if len(on) == 0 {
		delete(m.bindings, elm)
		return nil
	}

	if b == nil {
		b = &binding{ids: make(map[string]int)}
		m.bindings[elm] = b
	}
	b.vnode = v
	for _, typ := range sortedKeys(on) {
		if _, ok := b.ids[typ]; ok {
			continue
		}
		id, err := m.t.AddEventListener(elm, typ, b.handle)
		if err != nil {
			return err
		}
		b.ids[typ] = id
	}
	return nil
}

func (m *listenerModule) destroy(v *vdom.VNode) error {
	b := m.bindings[v.Elm]
	if b == nil {
		return nil
	}
	for _, typ := range sortedKeys(b.ids) {
		if err := m.t.RemoveEventListener(v.Elm, typ, b.ids[typ]); err != nil {
			return err
		}
	}
	delete(m.bindings, v.Elm)
	return nil
}
