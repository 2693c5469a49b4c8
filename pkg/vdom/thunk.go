package vdom

import "reflect"

// Thunk describes a subtree rendered by fn(args...) that is only rendered
// again when fn or any argument changes. Unchanged thunks reuse the previous
// rendering, so their children are not diffed at all.
func Thunk(sel, key string, fn func(args ...any) *VNode, args ...any) *VNode {
	return H(sel, Key(key), &Data{
		Hook: &Hooks{
			Init:     initThunk,
			Prepatch: prepatchThunk,
		},
		Fn:   fn,
		Args: args,
	})
}

// copyToThunk makes thunk describe the rendered node v.
func copyToThunk(v, thunk *VNode) {
	if v.Data == nil {
		v.Data = &Data{}
	}
	v.Data.Fn = thunk.Data.Fn
	v.Data.Args = thunk.Data.Args
	thunk.Data = v.Data
	thunk.Children = v.Children
	thunk.Text = v.Text
	thunk.Content = v.Content
	thunk.Elm = v.Elm
}

func initThunk(thunk *VNode) {
	cur := thunk.Data
	copyToThunk(cur.Fn(cur.Args...), thunk)
}

func prepatchThunk(old, thunk *VNode) {
	prev, cur := old.Data, thunk.Data
	if !sameFunc(prev.Fn, cur.Fn) || len(prev.Args) != len(cur.Args) {
		copyToThunk(cur.Fn(cur.Args...), thunk)
		return
	}
	for i := range cur.Args {
		if !sameArg(prev.Args[i], cur.Args[i]) {
			copyToThunk(cur.Fn(cur.Args...), thunk)
			return
		}
	}
	copyToThunk(old, thunk)
}

func sameFunc(a, b func(args ...any) *VNode) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// sameArg compares thunk arguments by identity: values of comparable types
// with ==, slices, maps, and funcs by their underlying pointer.
func sameArg(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}
