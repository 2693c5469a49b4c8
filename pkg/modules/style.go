package modules

import "github.com/vango-dev/treepatch/pkg/vdom"

// Style syncs Data.Style. Delayed properties are applied when the pass
// completes, Destroy properties when the node is destroyed, and Remove
// properties just before the node is removed.
func Style(t Target) vdom.Module {
	s := &styleModule{t: t}
	return vdom.Module{
		Name:    "style",
		Create:  s.update,
		Update:  s.update,
		Destroy: s.destroy,
		Remove:  s.remove,
		Post:    s.flush,
	}
}

type delayedStyle struct {
	elm   vdom.Handle
	name  string
	value string
}

type styleModule struct {
	t       Target
	delayed []delayedStyle
}

func styleOf(v *vdom.VNode) *vdom.Style {
	if st := dataOf(v).Style; st != nil {
		return st
	}
	return &vdom.Style{}
}

func (s *styleModule) update(old, v *vdom.VNode) error {
	if dataOf(old).Style == nil && dataOf(v).Style == nil {
		return nil
	}
	oldStyle, style := styleOf(old), styleOf(v)
	if oldStyle == style {
		return nil
	}
	elm := v.Elm

	for _, name := range sortedKeys(oldStyle.Props) {
		if _, ok := style.Props[name]; !ok {
			if err := s.t.RemoveStyle(elm, name); err != nil {
				return err
			}
		}
	}
	for _, name := range sortedKeys(style.Props) {
		cur := style.Props[name]
		if prev, ok := oldStyle.Props[name]; ok && prev == cur {
			continue
		}
		if err := s.t.SetStyle(elm, name, cur); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(style.Delayed) {
		cur := style.Delayed[name]
		if prev, ok := oldStyle.Delayed[name]; ok && prev == cur {
			continue
		}
		s.delayed = append(s.delayed, delayedStyle{elm: elm, name: name, value: cur})
	}
	return nil
}

// flush applies delayed properties queued during the pass.
func (s *styleModule) flush() error {
	pending := s.delayed
	s.delayed = nil
	for _, d := range pending {
		if err := s.t.SetStyle(d.elm, d.name, d.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *styleModule) destroy(v *vdom.VNode) error {
	st := dataOf(v).Style
	if st == nil || v.Kind != vdom.KindElement {
		return nil
	}
	for _, name := range sortedKeys(st.Destroy) {
		if err := s.t.SetStyle(v.Elm, name, st.Destroy[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *styleModule) remove(v *vdom.VNode, rm *vdom.Removal) error {
	st := dataOf(v).Style
	if st != nil && v.Kind == vdom.KindElement {
		for _, name := range sortedKeys(st.Remove) {
			if err := s.t.SetStyle(v.Elm, name, st.Remove[name]); err != nil {
				return err
			}
		}
	}
	return rm.Done()
}
