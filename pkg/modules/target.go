package modules

import (
	"reflect"
	"sort"

	"github.com/vango-dev/treepatch/pkg/vdom"
)

// Target is the element-level surface of a live tree used by plugins.
type Target interface {
	SetAttribute(h vdom.Handle, name, value string) error
	SetAttributeNS(h vdom.Handle, ns, name, value string) error
	RemoveAttribute(h vdom.Handle, name string) error

	SetProperty(h vdom.Handle, name string, value any) error
	GetProperty(h vdom.Handle, name string) (any, bool)
	DeleteProperty(h vdom.Handle, name string) error

	SetStyle(h vdom.Handle, name, value string) error
	RemoveStyle(h vdom.Handle, name string) error

	AddClass(h vdom.Handle, name string) error
	RemoveClass(h vdom.Handle, name string) error

	AddEventListener(h vdom.Handle, typ string, fn func(*vdom.Event)) (int, error)
	RemoveEventListener(h vdom.Handle, typ string, id int) error
}

// dataOf returns v's data, or an empty value for nodes without data.
func dataOf(v *vdom.VNode) *vdom.Data {
	if v == nil || v.Data == nil {
		return &vdom.Data{}
	}
	return v.Data
}

// sortedKeys returns the keys of m in order, so mutations are deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sameMap reports whether two maps are the same map value.
func sameMap[V any](a, b map[string]V) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// valuesEqual compares two data values for equality.
func valuesEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}
