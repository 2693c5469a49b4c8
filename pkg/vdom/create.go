package vdom

// createElm materializes v and its subtree and returns the live node.
// Nodes declaring an Insert hook are queued on the pass.
func (p *pass) createElm(v *VNode) (Handle, error) {
	if h := v.hooks(); h != nil && h.Init != nil {
		h.Init(v)
	}

	var err error
	switch v.Kind {
	case KindComment:
		v.Elm, err = p.api.CreateComment(v.Text)
		if err != nil {
			return NoHandle, err
		}

	case KindElement:
		tag, id, class := ParseSelector(v.Sel)
		if v.Data != nil && v.Data.NS != "" {
			v.Elm, err = p.api.CreateElementNS(v.Data.NS, tag)
		} else {
			v.Elm, err = p.api.CreateElement(tag)
		}
		if err != nil {
			return NoHandle, err
		}
		elm := v.Elm
		if id != "" {
			if err := p.api.SetAttribute(elm, "id", id); err != nil {
				return NoHandle, err
			}
		}
		if class != "" {
			if err := p.api.SetAttribute(elm, "class", class); err != nil {
				return NoHandle, err
			}
		}
		for _, fn := range p.cbs.create {
			if err := fn(emptyNode, v); err != nil {
				return NoHandle, err
			}
		}

		switch v.Content {
		case ContentChildren:
			for _, ch := range v.Children {
				if ch == nil {
					continue
				}
				child, err := p.createElm(ch)
				if err != nil {
					return NoHandle, err
				}
				if err := p.api.AppendChild(elm, child); err != nil {
					return NoHandle, err
				}
			}
		case ContentText:
			text, err := p.api.CreateTextNode(v.Text)
			if err != nil {
				return NoHandle, err
			}
			if err := p.api.AppendChild(elm, text); err != nil {
				return NoHandle, err
			}
		}

		if h := v.hooks(); h != nil {
			if h.Create != nil {
				h.Create(emptyNode, v)
			}
			if h.Insert != nil {
				p.inserted = append(p.inserted, v)
			}
		}

	default:
		v.Elm, err = p.api.CreateTextNode(v.Text)
		if err != nil {
			return NoHandle, err
		}
	}

	return v.Elm, nil
}

// addVnodes materializes vnodes[start:end+1] and inserts them before ref.
func (p *pass) addVnodes(parent, ref Handle, vnodes []*VNode, start, end int) error {
	for ; start <= end; start++ {
		ch := vnodes[start]
		if ch == nil {
			continue
		}
		elm, err := p.createElm(ch)
		if err != nil {
			return err
		}
		if err := p.api.InsertBefore(parent, elm, ref); err != nil {
			return err
		}
	}
	return nil
}
