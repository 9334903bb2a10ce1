package pseq

import "github.com/arriqaaq/pseq/elem"

// appendLeft returns a new tree with n prepended. t is borrowed: it remains
// valid and unchanged. n is consumed (ownership transferred in).
func appendLeft(t *tree, n *node) *tree {
	switch t.kind {
	case emptyKind:
		return newSingle(n)
	case singleKind:
		return newDeep(newDigit(n), emptyTree, newDigit(retainNode(t.single)))
	default: // deepKind
		if len(t.left.children) < 4 {
			children := append([]*node{n}, retainChildren(t.left)...)
			return newDeep(newDigit(children...), retainTree(t.middle), retainDigit(t.right))
		}
		// left digit full: keep n and the extreme element as a 2-digit,
		// push the remaining three into the middle as one internal node.
		old := t.left.children
		kept := newDigit(n, retainNode(old[0]))
		overflow := newInternal(retainNode(old[1]), retainNode(old[2]), retainNode(old[3]))
		newMiddle := appendLeft(t.middle, overflow)
		return newDeep(kept, newMiddle, retainDigit(t.right))
	}
}

// appendRight is appendLeft's mirror image.
func appendRight(t *tree, n *node) *tree {
	switch t.kind {
	case emptyKind:
		return newSingle(n)
	case singleKind:
		return newDeep(newDigit(retainNode(t.single)), emptyTree, newDigit(n))
	default:
		if len(t.right.children) < 4 {
			children := append(retainChildren(t.right), n)
			return newDeep(retainDigit(t.left), retainTree(t.middle), newDigit(children...))
		}
		old := t.right.children
		kept := newDigit(retainNode(old[3]), n)
		overflow := newInternal(retainNode(old[0]), retainNode(old[1]), retainNode(old[2]))
		newMiddle := appendRight(t.middle, overflow)
		return newDeep(retainDigit(t.left), newMiddle, kept)
	}
}

// appendLeftElement / appendRightElement are the element-level entry points
// used by PSequence.
func appendLeftElement(proto elem.Protocol, t *tree, x elem.Element) *tree {
	return appendLeft(t, newLeaf(proto, x))
}

func appendRightElement(proto elem.Protocol, t *tree, x elem.Element) *tree {
	return appendRight(t, newLeaf(proto, x))
}

// viewLeft returns the leftmost leaf node and the remaining tree (§4.3
// viewLeft). t is borrowed. Panics if t is empty; callers check Size() > 0
// first (mirrors the C extension's precondition).
func viewLeft(proto elem.Protocol, t *tree) (*node, *tree) {
	switch t.kind {
	case singleKind:
		return retainNode(t.single), emptyTree
	case deepKind:
		first := retainNode(t.left.children[0])
		if len(t.left.children) > 1 {
			rest := newDigit(retainChildren(t.left)[1:]...)
			return first, newDeep(rest, retainTree(t.middle), retainDigit(t.right))
		}
		return first, pullLeft(proto, t.middle, t.right)
	}
	panic("pseq: viewLeft of empty tree")
}

// viewRight is viewLeft's mirror image.
func viewRight(proto elem.Protocol, t *tree) (*node, *tree) {
	switch t.kind {
	case singleKind:
		return retainNode(t.single), emptyTree
	case deepKind:
		n := len(t.right.children)
		last := retainNode(t.right.children[n-1])
		if n > 1 {
			rest := newDigit(retainChildren(t.right)[:n-1]...)
			return last, newDeep(retainDigit(t.left), retainTree(t.middle), rest)
		}
		return last, pullRight(proto, t.left, t.middle)
	}
	panic("pseq: viewRight of empty tree")
}

// pullLeft rebuilds the left side of a Deep whose left digit has just been
// emptied: view the middle for its first (deeper) node and unpack it into a
// digit, or promote right to a tree if the middle is itself empty (§4.3
// viewLeft, "pullLeft").
func pullLeft(proto elem.Protocol, middle *tree, right *digit) *tree {
	if middle.Size() == 0 {
		return fromDigitAsTree(retainDigit(right))
	}
	firstNode, restMiddle := viewLeft(proto, middle)
	left := newDigit(firstNode.children...)
	retainEach(firstNode.children)
	releaseNode(firstNode, proto)
	return newDeep(left, restMiddle, retainDigit(right))
}

// pullRight mirrors pullLeft.
func pullRight(proto elem.Protocol, left *digit, middle *tree) *tree {
	if middle.Size() == 0 {
		return fromDigitAsTree(retainDigit(left))
	}
	lastNode, restMiddle := viewRight(proto, middle)
	right := newDigit(lastNode.children...)
	retainEach(lastNode.children)
	releaseNode(lastNode, proto)
	return newDeep(retainDigit(left), restMiddle, right)
}

func retainEach(nodes []*node) {
	for _, n := range nodes {
		n.rc.Retain()
	}
}

// fromDigitAsTree consumes a digit and rebuilds it as a bare tree (Single
// if it has one child, otherwise Deep-with-empty-middle split in half) —
// §4.3's "promote the far digit to a tree via fromDigit".
func fromDigitAsTree(d *digit) *tree {
	children := make([]*node, len(d.children))
	for i, c := range d.children {
		children[i] = retainNode(c)
	}
	releaseDigitWrapperOnly(d)
	return fromNodes(children)
}

// releaseDigitWrapperOnly drops d's own refcount without touching its
// children, whose ownership is being transferred directly into a new
// structure built from the same slice of children.
func releaseDigitWrapperOnly(d *digit) {
	d.rc.Release()
}
