package dom

import "github.com/vango-dev/treepatch/pkg/vdom"

// AddEventListener registers fn for events of type typ on an element and
// returns an id for RemoveEventListener.
func (d *Document) AddEventListener(h vdom.Handle, typ string, fn func(*vdom.Event)) (int, error) {
	n, err := d.element("AddEventListener", h)
	if err != nil {
		return 0, err
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]listener)
	}
	d.listenerID++
	n.listeners[typ] = append(n.listeners[typ], listener{id: d.listenerID, fn: fn})
	d.record(Mutation{Op: OpAddListener, Node: h, Name: typ})
	return d.listenerID, nil
}

// RemoveEventListener unregisters the listener with the given id.
func (d *Document) RemoveEventListener(h vdom.Handle, typ string, id int) error {
	n, err := d.element("RemoveEventListener", h)
	if err != nil {
		return err
	}
	list := n.listeners[typ]
	for i, l := range list {
		if l.id == id {
			n.listeners[typ] = append(list[:i], list[i+1:]...)
			d.record(Mutation{Op: OpRemoveListener, Node: h, Name: typ})
			return nil
		}
	}
	return nil
}

// ListenerCount returns the number of listeners for typ on h.
func (d *Document) ListenerCount(h vdom.Handle, typ string) int {
	n, err := d.element("ListenerCount", h)
	if err != nil {
		return 0
	}
	return len(n.listeners[typ])
}

// Dispatch delivers an event to target and then to each of its ancestors.
// It returns the number of listeners invoked.
func (d *Document) Dispatch(target vdom.Handle, typ string, detail any) int {
	ev := &vdom.Event{Type: typ, Target: target, Detail: detail}
	count := 0
	for h := target; h != vdom.NoHandle; h = d.ParentNode(h) {
		if d.NodeType(h) != ElementNode {
			continue
		}
		// Copy so listeners may unregister themselves.
		list := append([]listener(nil), d.nodes[h].listeners[typ]...)
		for _, l := range list {
			l.fn(ev)
			count++
		}
	}
	return count
}
