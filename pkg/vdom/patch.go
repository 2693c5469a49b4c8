package vdom

// patchVnode reconciles old into v, which must be the same logical node.
// v takes over old's live node.
func (p *pass) patchVnode(old, v *VNode) error {
	hook := v.hooks()
	if hook != nil && hook.Prepatch != nil {
		hook.Prepatch(old, v)
	}
	elm := old.Elm
	v.Elm = elm
	if old == v {
		return nil
	}

	if v.Data != nil {
		for _, fn := range p.cbs.update {
			if err := fn(old, v); err != nil {
				return err
			}
		}
		if h := v.Data.Hook; h != nil && h.Update != nil {
			h.Update(old, v)
		}
	}

	oldCh, ch := old.Children, v.Children
	switch {
	case !v.hasText():
		switch {
		case old.hasChildren() && v.hasChildren():
			if !sameChildren(oldCh, ch) {
				if err := p.updateChildren(elm, oldCh, ch); err != nil {
					return err
				}
			}
		case v.hasChildren():
			if old.hasText() {
				if err := p.api.SetTextContent(elm, ""); err != nil {
					return err
				}
			}
			if err := p.addVnodes(elm, NoHandle, ch, 0, len(ch)-1); err != nil {
				return err
			}
		case old.hasChildren():
			if err := p.removeVnodes(elm, oldCh, 0, len(oldCh)-1); err != nil {
				return err
			}
		case old.hasText():
			if err := p.api.SetTextContent(elm, ""); err != nil {
				return err
			}
		}

	case !old.hasText() || old.Text != v.Text:
		if old.hasChildren() {
			if err := p.removeVnodes(elm, oldCh, 0, len(oldCh)-1); err != nil {
				return err
			}
		}
		if err := p.api.SetTextContent(elm, v.Text); err != nil {
			return err
		}
	}

	if hook != nil && hook.Postpatch != nil {
		hook.Postpatch(old, v)
	}
	return nil
}
