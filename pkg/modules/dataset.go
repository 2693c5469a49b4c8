package modules

import (
	"strings"
	"unicode"

	"github.com/vango-dev/treepatch/pkg/vdom"
)

// Dataset syncs Data.Dataset onto data-* attributes. Keys are camelCase
// and map to kebab-case attribute names: "userId" becomes "data-user-id".
func Dataset(t Target) vdom.Module {
	update := func(old, v *vdom.VNode) error {
		oldSet, set := dataOf(old).Dataset, dataOf(v).Dataset
		if len(oldSet) == 0 && len(set) == 0 {
			return nil
		}
		if sameMap(oldSet, set) {
			return nil
		}
		elm := v.Elm

		for _, key := range sortedKeys(oldSet) {
			if _, ok := set[key]; !ok {
				if err := t.RemoveAttribute(elm, datasetAttr(key)); err != nil {
					return err
				}
			}
		}
		for _, key := range sortedKeys(set) {
			cur := set[key]
			if prev, ok := oldSet[key]; ok && prev == cur {
				continue
			}
			if err := t.SetAttribute(elm, datasetAttr(key), cur); err != nil {
				return err
			}
		}
		return nil
	}
	return vdom.Module{Name: "dataset", Create: update, Update: update}
}

// datasetAttr converts a camelCase dataset key to its attribute name.
func datasetAttr(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
