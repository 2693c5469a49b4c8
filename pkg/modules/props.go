package modules

import "github.com/vango-dev/treepatch/pkg/vdom"

// Props syncs Data.Props onto element properties. A "value" property is
// not written when the live value already matches, so user edits are not
// clobbered by an unchanged description.
func Props(t Target) vdom.Module {
	update := func(old, v *vdom.VNode) error {
		oldProps, props := dataOf(old).Props, dataOf(v).Props
		if len(oldProps) == 0 && len(props) == 0 {
			return nil
		}
		if sameMap(oldProps, props) {
			return nil
		}
		elm := v.Elm

		for _, key := range sortedKeys(oldProps) {
			if _, ok := props[key]; !ok {
				if err := t.DeleteProperty(elm, key); err != nil {
					return err
				}
			}
		}
		for _, key := range sortedKeys(props) {
			cur := props[key]
			if prev, ok := oldProps[key]; ok && valuesEqual(prev, cur) {
				continue
			}
			if key == "value" {
				if live, ok := t.GetProperty(elm, key); ok && valuesEqual(live, cur) {
					continue
				}
			}
			if err := t.SetProperty(elm, key, cur); err != nil {
				return err
			}
		}
		return nil
	}
	return vdom.Module{Name: "props", Create: update, Update: update}
}
