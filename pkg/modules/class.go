package modules

import "github.com/vango-dev/treepatch/pkg/vdom"

// Class toggles classes listed in Data.Class.
func Class(t Target) vdom.Module {
	update := func(old, v *vdom.VNode) error {
		oldClass, klass := dataOf(old).Class, dataOf(v).Class
		if len(oldClass) == 0 && len(klass) == 0 {
			return nil
		}
		if sameMap(oldClass, klass) {
			return nil
		}
		elm := v.Elm

		for _, name := range sortedKeys(oldClass) {
			if oldClass[name] && !klass[name] {
				if err := t.RemoveClass(elm, name); err != nil {
					return err
				}
			}
		}
		for _, name := range sortedKeys(klass) {
			cur := klass[name]
			if cur == oldClass[name] {
				continue
			}
			var err error
			if cur {
				err = t.AddClass(elm, name)
			} else {
				err = t.RemoveClass(elm, name)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	return vdom.Module{Name: "class", Create: update, Update: update}
}
