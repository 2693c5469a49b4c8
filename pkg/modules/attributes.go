package modules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/treepatch/pkg/vdom"
)

const (
	xlinkNS = "http://www.w3.org/1999/xlink"
	xmlNS   = "http://www.w3.org/XML/1998/namespace"
)

// Attributes syncs Data.Attrs. true sets an empty attribute, false removes
// it, and "xlink:" and "xml:" names are set in their namespaces.
func Attributes(t Target) vdom.Module {
	update := func(old, v *vdom.VNode) error {
		oldAttrs, attrs := dataOf(old).Attrs, dataOf(v).Attrs
		if len(oldAttrs) == 0 && len(attrs) == 0 {
			return nil
		}
		if sameMap(oldAttrs, attrs) {
			return nil
		}
		elm := v.Elm

		for _, key := range sortedKeys(attrs) {
			cur := attrs[key]
			if prev, ok := oldAttrs[key]; ok && valuesEqual(prev, cur) {
				continue
			}
			if err := setAttr(t, elm, key, cur); err != nil {
				return err
			}
		}
		for _, key := range sortedKeys(oldAttrs) {
			if _, ok := attrs[key]; !ok {
				if err := t.RemoveAttribute(elm, key); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return vdom.Module{Name: "attributes", Create: update, Update: update}
}

func setAttr(t Target, elm vdom.Handle, key string, val any) error {
	if b, ok := val.(bool); ok {
		if b {
			return t.SetAttribute(elm, key, "")
		}
		return t.RemoveAttribute(elm, key)
	}
	s := attrString(val)
	switch {
	case strings.HasPrefix(key, "xml:"):
		return t.SetAttributeNS(elm, xmlNS, key, s)
	case strings.HasPrefix(key, "xlink:"):
		return t.SetAttributeNS(elm, xlinkNS, key, s)
	default:
		return t.SetAttribute(elm, key, s)
	}
}

// attrString converts an attribute value to its string form.
func attrString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
