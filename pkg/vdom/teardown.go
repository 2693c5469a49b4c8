package vdom

// Removal counts the acknowledgements a pending removal is waiting for.
//
// The live node is detached from its parent when the last expected
// acknowledgement arrives. Plugins with a Remove slot and the node's own
// Remove hook each acknowledge once; when the node has no Remove hook the
// engine acknowledges on its behalf.
type Removal struct {
	api      Adapter
	node     Handle
	expected int
	received int
	err      error
}

func newRemoval(api Adapter, node Handle, expected int) *Removal {
	return &Removal{api: api, node: node, expected: expected}
}

// Done acknowledges the removal. The call that completes the count detaches
// the node and returns any error from the live tree. Calls after completion
// do nothing.
func (r *Removal) Done() error {
	if r.received >= r.expected {
		return nil
	}
	r.received++
	if r.received < r.expected {
		return nil
	}
	if parent := r.api.ParentNode(r.node); parent != NoHandle {
		r.err = r.api.RemoveChild(parent, r.node)
	}
	return r.err
}

// Node returns the live node being removed.
func (r *Removal) Node() Handle {
	return r.node
}

// Pending returns the number of acknowledgements still outstanding.
func (r *Removal) Pending() int {
	return r.expected - r.received
}

// Err returns the error from detaching the node, if any.
func (r *Removal) Err() error {
	return r.err
}

// invokeDestroyHook fires destroy hooks for v and its subtree, parents first.
func (p *pass) invokeDestroyHook(v *VNode) error {
	if v.Data == nil {
		return nil
	}
	if h := v.Data.Hook; h != nil && h.Destroy != nil {
		h.Destroy(v)
	}
	for _, fn := range p.cbs.destroy {
		if err := fn(v); err != nil {
			return err
		}
	}
	for _, ch := range v.Children {
		if ch != nil {
			if err := p.invokeDestroyHook(ch); err != nil {
				return err
			}
		}
	}
	return nil
}

// removeVnodes tears down vnodes[start:end+1] and removes them from parent.
func (p *pass) removeVnodes(parent Handle, vnodes []*VNode, start, end int) error {
	for ; start <= end; start++ {
		ch := vnodes[start]
		if ch == nil {
			continue
		}
		if ch.Kind == KindText {
			if err := p.api.RemoveChild(parent, ch.Elm); err != nil {
				return err
			}
			continue
		}

		if err := p.invokeDestroyHook(ch); err != nil {
			return err
		}
		rm := newRemoval(p.api, ch.Elm, len(p.cbs.remove)+1)
		for _, fn := range p.cbs.remove {
			if err := fn(ch, rm); err != nil {
				return err
			}
		}
		if h := ch.hooks(); h != nil && h.Remove != nil {
			h.Remove(ch, rm)
		} else {
			rm.Done()
		}
		if err := rm.Err(); err != nil {
			return err
		}
	}
	return nil
}
