package pvector

import "github.com/arriqaaq/pseq/elem"

// frame is one entry of the descent stack described in §4.4: an interior
// node, its level, and the index of the next child to visit.
type frame struct {
	node  *trieNode
	level uint
	idx   int
}

// Iterator is a stack-based traversal over a PVector (§4.4). Each step
// pushes/pops frames until a leaf sits at the top; amortized O(1) per
// element, worst case O(log N) for a single step. The reverse flag is
// §4.4's "direction flag": set, it walks back to front instead of front to
// back (§6.3 reversed).
type Iterator struct {
	v       *PVector
	stack   []frame
	leaf    *trieNode
	leafIdx int
	leafEnd int
	started bool
	pos     int
	reverse bool
}

// Iterator returns a fresh forward iterator positioned before the first
// element.
func (v *PVector) Iterator() *Iterator {
	return &Iterator{v: v}
}

// ReverseIterator returns a fresh iterator positioned before the last
// element, walking back to front.
func (v *PVector) ReverseIterator() *Iterator {
	return &Iterator{v: v, reverse: true}
}

// Len reports the number of elements not yet visited (for __length_hint__
// style consumers).
func (it *Iterator) Len() int { return it.v.count - it.pos }

// liveCount returns the number of non-nil entries in node's items. Entries
// are always a non-nil prefix followed by a nil suffix, since trie growth
// only ever fills slots left to right (§4.2 pushTail/newPath).
func liveCount(node *trieNode) int {
	count := 0
	for _, it := range node.items {
		if it == nil {
			break
		}
		count++
	}
	return count
}

// descend walks from node (at level) down to its first leaf in the
// iterator's direction — leftmost when forward, rightmost when reverse —
// pushing one frame per interior level so the traversal can resume from any
// sibling.
func (it *Iterator) descend(node *trieNode, level uint) {
	for level > 0 {
		var idx, next int
		if it.reverse {
			idx = liveCount(node) - 1
			next = idx - 1
		} else {
			idx = 0
			next = 1
		}
		it.stack = append(it.stack, frame{node: node, level: level, idx: next})
		node = node.items[idx].(*trieNode)
		level -= bits
	}
	it.leaf = node
	if it.reverse {
		it.leafEnd = liveCount(node)
		it.leafIdx = it.leafEnd - 1
	} else {
		it.leafIdx = 0
		it.leafEnd = width
	}
}

// Next advances the iterator and reports whether a value is now available
// via Value.
func (it *Iterator) Next() bool {
	if it.reverse {
		return it.nextReverse()
	}
	return it.nextForward()
}

func (it *Iterator) nextForward() bool {
	if it.pos >= it.v.count {
		return false
	}
	if !it.started {
		it.started = true
		if it.v.tailOff() > 0 {
			it.descend(it.v.root, it.v.shift)
		} else {
			it.leaf = it.v.tail
			it.leafIdx = 0
			it.leafEnd = it.v.tailSize()
		}
		it.pos++
		return true
	}
	it.leafIdx++
	if it.leafIdx < it.leafEnd {
		it.pos++
		return true
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.idx >= width || top.node.items[top.idx] == nil {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		child := top.node.items[top.idx].(*trieNode)
		childLevel := top.level - bits
		top.idx++
		it.descend(child, childLevel)
		it.pos++
		return true
	}
	if it.pos < it.v.count {
		it.leaf = it.v.tail
		it.leafIdx = 0
		it.leafEnd = it.v.tailSize()
		it.pos++
		return true
	}
	return false
}

// nextReverse mirrors nextForward: the last element lives in the tail (when
// non-empty), so reverse traversal visits the tail first and only then
// descends into the root from its rightmost leaf.
func (it *Iterator) nextReverse() bool {
	if it.pos >= it.v.count {
		return false
	}
	if !it.started {
		it.started = true
		it.leaf = it.v.tail
		it.leafEnd = it.v.tailSize()
		it.leafIdx = it.leafEnd - 1
		it.pos++
		return true
	}
	it.leafIdx--
	if it.leafIdx >= 0 {
		it.pos++
		return true
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.idx < 0 || top.node.items[top.idx] == nil {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		child := top.node.items[top.idx].(*trieNode)
		childLevel := top.level - bits
		top.idx--
		it.descend(child, childLevel)
		it.pos++
		return true
	}
	if it.pos < it.v.count && it.v.tailOff() > 0 {
		it.descend(it.v.root, it.v.shift)
		it.pos++
		return true
	}
	return false
}

// Value returns the element the iterator currently sits on. Valid only
// after Next returned true.
func (it *Iterator) Value() elem.Element {
	return it.leaf.items[it.leafIdx]
}
