package vdom

// Module is a plugin reacting to lifecycle phases of every node.
//
// Each field is optional. A non-nil error aborts the current pass and is
// returned from Patch.
type Module struct {
	Name    string
	Pre     func() error
	Post    func() error
	Create  func(empty, v *VNode) error
	Update  func(old, v *VNode) error
	Remove  func(v *VNode, rm *Removal) error
	Destroy func(v *VNode) error
}

// hookSlots holds one ordered callback list per phase.
type hookSlots struct {
	pre     []func() error
	post    []func() error
	create  []func(empty, v *VNode) error
	update  []func(old, v *VNode) error
	remove  []func(v *VNode, rm *Removal) error
	destroy []func(v *VNode) error
}

func newHookSlots(modules []Module) hookSlots {
	var s hookSlots
	for _, m := range modules {
		if m.Pre != nil {
			s.pre = append(s.pre, m.Pre)
		}
		if m.Post != nil {
			s.post = append(s.post, m.Post)
		}
		if m.Create != nil {
			s.create = append(s.create, m.Create)
		}
		if m.Update != nil {
			s.update = append(s.update, m.Update)
		}
		if m.Remove != nil {
			s.remove = append(s.remove, m.Remove)
		}
		if m.Destroy != nil {
			s.destroy = append(s.destroy, m.Destroy)
		}
	}
	return s
}
