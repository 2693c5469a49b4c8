package vdom

// updateChildren reconciles oldCh into newCh under the live node parent.
//
// Four cursors walk both lists from the ends inward. Each round tries, in
// order: start/start, end/end, old start to new end (moved right), old end
// to new start (moved left). When none match, new start is looked up by key
// among the remaining old children. Old entries relocated through the key
// lookup are set to nil in oldCh and skipped afterwards.
func (p *pass) updateChildren(parent Handle, oldCh, newCh []*VNode) error {
	oldStartIdx, newStartIdx := 0, 0
	oldEndIdx := len(oldCh) - 1
	newEndIdx := len(newCh) - 1
	oldStart := at(oldCh, 0)
	oldEnd := at(oldCh, oldEndIdx)
	newStart := at(newCh, 0)
	newEnd := at(newCh, newEndIdx)

	var oldKeyToIdx map[string]int

	for oldStartIdx <= oldEndIdx && newStartIdx <= newEndIdx {
		switch {
		case oldStart == nil:
			oldStartIdx++
			oldStart = at(oldCh, oldStartIdx)

		case oldEnd == nil:
			oldEndIdx--
			oldEnd = at(oldCh, oldEndIdx)

		case newStart == nil:
			newStartIdx++
			newStart = at(newCh, newStartIdx)

		case newEnd == nil:
			newEndIdx--
			newEnd = at(newCh, newEndIdx)

		case sameVNode(oldStart, newStart):
			if err := p.patchVnode(oldStart, newStart); err != nil {
				return err
			}
			oldStartIdx++
			newStartIdx++
			oldStart = at(oldCh, oldStartIdx)
			newStart = at(newCh, newStartIdx)

		case sameVNode(oldEnd, newEnd):
			if err := p.patchVnode(oldEnd, newEnd); err != nil {
				return err
			}
			oldEndIdx--
			newEndIdx--
			oldEnd = at(oldCh, oldEndIdx)
			newEnd = at(newCh, newEndIdx)

		case sameVNode(oldStart, newEnd):
			// Moved right.
			if err := p.patchVnode(oldStart, newEnd); err != nil {
				return err
			}
			if err := p.api.InsertBefore(parent, oldStart.Elm, p.api.NextSibling(oldEnd.Elm)); err != nil {
				return err
			}
			oldStartIdx++
			newEndIdx--
			oldStart = at(oldCh, oldStartIdx)
			newEnd = at(newCh, newEndIdx)

		case sameVNode(oldEnd, newStart):
			// Moved left.
			if err := p.patchVnode(oldEnd, newStart); err != nil {
				return err
			}
			if err := p.api.InsertBefore(parent, oldEnd.Elm, oldStart.Elm); err != nil {
				return err
			}
			oldEndIdx--
			newStartIdx++
			oldEnd = at(oldCh, oldEndIdx)
			newStart = at(newCh, newStartIdx)

		default:
			if oldKeyToIdx == nil {
				oldKeyToIdx = createKeyToOldIdx(oldCh, oldStartIdx, oldEndIdx)
			}
			idxInOld, found := -1, false
			if newStart.Key != "" {
				idxInOld, found = oldKeyToIdx[newStart.Key]
			}
			switch {
			case !found:
				elm, err := p.createElm(newStart)
				if err != nil {
					return err
				}
				if err := p.api.InsertBefore(parent, elm, oldStart.Elm); err != nil {
					return err
				}
			case oldCh[idxInOld] == nil:
				// Key already consumed earlier in this pass; only reachable
				// with duplicate sibling keys.
				elm, err := p.createElm(newStart)
				if err != nil {
					return err
				}
				if err := p.api.InsertBefore(parent, elm, oldStart.Elm); err != nil {
					return err
				}
			default:
				elmToMove := oldCh[idxInOld]
				if elmToMove.Kind != newStart.Kind || elmToMove.Sel != newStart.Sel {
					elm, err := p.createElm(newStart)
					if err != nil {
						return err
					}
					if err := p.api.InsertBefore(parent, elm, oldStart.Elm); err != nil {
						return err
					}
				} else {
					if err := p.patchVnode(elmToMove, newStart); err != nil {
						return err
					}
					oldCh[idxInOld] = nil
					if err := p.api.InsertBefore(parent, elmToMove.Elm, oldStart.Elm); err != nil {
						return err
					}
				}
			}
			newStartIdx++
			newStart = at(newCh, newStartIdx)
		}
	}

	if oldStartIdx <= oldEndIdx || newStartIdx <= newEndIdx {
		if oldStartIdx > oldEndIdx {
			ref := NoHandle
			if next := at(newCh, newEndIdx+1); next != nil {
				ref = next.Elm
			}
			return p.addVnodes(parent, ref, newCh, newStartIdx, newEndIdx)
		}
		return p.removeVnodes(parent, oldCh, oldStartIdx, oldEndIdx)
	}
	return nil
}

// at returns list[i], or nil when i is out of range.
func at(list []*VNode, i int) *VNode {
	if i < 0 || i >= len(list) {
		return nil
	}
	return list[i]
}

// createKeyToOldIdx maps the keys of children[begin:end+1] to their index.
func createKeyToOldIdx(children []*VNode, begin, end int) map[string]int {
	m := make(map[string]int, end-begin+1)
	for i := begin; i <= end; i++ {
		if ch := children[i]; ch != nil && ch.Key != "" {
			m[ch.Key] = i
		}
	}
	return m
}
