package pseq

import "github.com/arriqaaq/pseq/elem"

type workKind int

const (
	workNode workKind = iota
	workDigit
	workTree
)

type workItem struct {
	kind workKind
	n    *node
	d    *digit
	t    *tree
}

// Iterator walks a PSequence's elements in O(log N) amortized per step,
// mirroring pvector's Iterator but generalized to tree/digit/node frames
// since a finger tree's leaves sit at varying stack depths. The reverse flag
// is §4.4's "direction flag": when set, the same push/pop machinery visits
// children right to left instead of left to right.
type Iterator struct {
	proto   elem.Protocol
	stack   []workItem
	current elem.Element
	started bool
	reverse bool
}

func newIterator(proto elem.Protocol, t *tree) *Iterator {
	it := &Iterator{proto: proto}
	it.push(workItem{kind: workTree, t: t})
	return it
}

// newReverseIterator is newIterator with the direction flag set.
func newReverseIterator(proto elem.Protocol, t *tree) *Iterator {
	it := &Iterator{proto: proto, reverse: true}
	it.push(workItem{kind: workTree, t: t})
	return it
}

func (it *Iterator) push(w workItem) {
	it.stack = append(it.stack, w)
}

func (it *Iterator) pop() (workItem, bool) {
	if len(it.stack) == 0 {
		return workItem{}, false
	}
	n := len(it.stack) - 1
	w := it.stack[n]
	it.stack = it.stack[:n]
	return w, true
}

// Next advances to the next element, returning false once exhausted.
func (it *Iterator) Next() bool {
	for {
		w, ok := it.pop()
		if !ok {
			return false
		}
		switch w.kind {
		case workTree:
			switch w.t.kind {
			case emptyKind:
				continue
			case singleKind:
				it.push(workItem{kind: workNode, n: w.t.single})
			case deepKind:
				if it.reverse {
					it.push(workItem{kind: workDigit, d: w.t.left})
					it.push(workItem{kind: workTree, t: w.t.middle})
					it.push(workItem{kind: workDigit, d: w.t.right})
				} else {
					it.push(workItem{kind: workDigit, d: w.t.right})
					it.push(workItem{kind: workTree, t: w.t.middle})
					it.push(workItem{kind: workDigit, d: w.t.left})
				}
			}
		case workDigit:
			it.pushNodesInOrder(w.d.children)
		case workNode:
			if w.n.kind == leafKind {
				it.current = w.n.elt
				return true
			}
			it.pushNodesInOrder(w.n.children)
		}
	}
}

// Value returns the element at the current position. Valid only after a
// call to Next that returned true.
func (it *Iterator) Value() elem.Element {
	return it.current
}

// pushNodesInOrder pushes children onto the stack so that popping visits
// them left to right (forward) or right to left (reverse).
func (it *Iterator) pushNodesInOrder(children []*node) {
	if it.reverse {
		for i := 0; i < len(children); i++ {
			it.push(workItem{kind: workNode, n: children[i]})
		}
		return
	}
	for i := len(children) - 1; i >= 0; i-- {
		it.push(workItem{kind: workNode, n: children[i]})
	}
}
