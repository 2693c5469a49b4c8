package dom

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/treepatch/pkg/vdom"
)

// MutationOp is the type of a recorded mutation.
type MutationOp uint8

const (
	OpCreate MutationOp = iota + 1
	OpInsert
	OpRemove
	OpSetText
	OpSetAttr
	OpRemoveAttr
	OpSetProp
	OpDeleteProp
	OpSetStyle
	OpRemoveStyle
	OpAddListener
	OpRemoveListener
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case OpCreate:
		return "Create"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpSetProp:
		return "SetProp"
	case OpDeleteProp:
		return "DeleteProp"
	case OpSetStyle:
		return "SetStyle"
	case OpRemoveStyle:
		return "RemoveStyle"
	case OpAddListener:
		return "AddListener"
	case OpRemoveListener:
		return "RemoveListener"
	default:
		return "Unknown"
	}
}

// Mutation is one recorded operation on the document.
type Mutation struct {
	Op     MutationOp
	Node   vdom.Handle
	Parent vdom.Handle // Insert, Remove
	Ref    vdom.Handle // Insert: the node inserted before, NoHandle for append
	Name   string      // tag, attribute, property, style, or event name
	Value  string
}

// String returns a one-line description of the mutation.
func (m Mutation) String() string {
	switch m.Op {
	case OpCreate:
		return fmt.Sprintf("%s #%d %s %q", m.Op, m.Node, m.Name, m.Value)
	case OpInsert:
		if m.Ref == vdom.NoHandle {
			return fmt.Sprintf("%s #%d into #%d at end", m.Op, m.Node, m.Parent)
		}
		return fmt.Sprintf("%s #%d into #%d before #%d", m.Op, m.Node, m.Parent, m.Ref)
	case OpRemove:
		return fmt.Sprintf("%s #%d from #%d", m.Op, m.Node, m.Parent)
	case OpSetText:
		return fmt.Sprintf("%s #%d %q", m.Op, m.Node, m.Value)
	default:
		if m.Value != "" {
			return fmt.Sprintf("%s #%d %s=%q", m.Op, m.Node, m.Name, m.Value)
		}
		return fmt.Sprintf("%s #%d %s", m.Op, m.Node, m.Name)
	}
}

func (d *Document) record(m Mutation) {
	if d.logging {
		d.log = append(d.log, m)
	}
}

// Mutations returns the mutations recorded since the last reset.
func (d *Document) Mutations() []Mutation {
	return d.log
}

// ResetMutations clears the mutation log.
func (d *Document) ResetMutations() {
	d.log = nil
}

// CountMutations returns how many recorded mutations have one of ops, or
// all of them when ops is empty.
func (d *Document) CountMutations(ops ...MutationOp) int {
	if len(ops) == 0 {
		return len(d.log)
	}
	n := 0
	for _, m := range d.log {
		for _, op := range ops {
			if m.Op == op {
				n++
				break
			}
		}
	}
	return n
}

// propString converts a property value to a string for the log.
func propString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
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
