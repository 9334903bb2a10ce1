package pseq

import "github.com/arriqaaq/pseq/elem"

// indexNode returns the leaf at position i within n (size-consistent),
// descending through cached sizes (§4.3 index). n is borrowed.
func indexNode(n *node, i int) elem.Element {
	if n.kind == leafKind {
		return n.elt
	}
	for _, c := range n.children {
		if i < c.size {
			return indexNode(c, i)
		}
		i -= c.size
	}
	panic("pseq: index out of range within node")
}

func indexDigit(d *digit, i int) elem.Element {
	for _, c := range d.children {
		if i < c.size {
			return indexNode(c, i)
		}
		i -= c.size
	}
	panic("pseq: index out of range within digit")
}

// indexTree is the Size-consulting descent of §4.3 index, O(log N). t is
// borrowed.
func indexTree(t *tree, i int) elem.Element {
	switch t.kind {
	case singleKind:
		return indexNode(t.single, i)
	case deepKind:
		if i < t.left.size {
			return indexDigit(t.left, i)
		}
		i -= t.left.size
		if i < t.middle.size {
			return indexTree(t.middle, i)
		}
		i -= t.middle.size
		return indexDigit(t.right, i)
	}
	panic("pseq: index out of range in empty tree")
}

// setNode returns a node with the leaf at position i replaced by x; every
// sibling keeps the same owning reference (retained), per §4.3 set:
// "construct a new node/digit/deep that shares all sibling children
// (retained) and substitutes the updated one." n is borrowed.
func setNode(proto elem.Protocol, n *node, i int, x elem.Element) *node {
	if n.kind == leafKind {
		return newLeaf(proto, x)
	}
	children := make([]*node, len(n.children))
	for idx, c := range n.children {
		if i < c.size {
			children[idx] = setNode(proto, c, i, x)
			for j := idx + 1; j < len(n.children); j++ {
				children[j] = retainNode(n.children[j])
			}
			return newInternal(children...)
		}
		i -= c.size
		children[idx] = retainNode(c)
	}
	panic("pseq: setNode index out of range")
}

func setDigit(proto elem.Protocol, d *digit, i int, x elem.Element) *digit {
	children := make([]*node, len(d.children))
	for idx, c := range d.children {
		if i < c.size {
			children[idx] = setNode(proto, c, i, x)
			for j := idx + 1; j < len(d.children); j++ {
				children[j] = retainNode(d.children[j])
			}
			return newDigit(children...)
		}
		i -= c.size
		children[idx] = retainNode(c)
	}
	panic("pseq: setDigit index out of range")
}

// setTree returns a new tree with index i replaced by x; O(log N) fresh
// nodes along one root-to-leaf spine (§4.3 set). t is borrowed.
func setTree(proto elem.Protocol, t *tree, i int, x elem.Element) *tree {
	switch t.kind {
	case singleKind:
		return newSingle(setNode(proto, t.single, i, x))
	case deepKind:
		if i < t.left.size {
			return newDeep(setDigit(proto, t.left, i, x), retainTree(t.middle), retainDigit(t.right))
		}
		i -= t.left.size
		if i < t.middle.size {
			return newDeep(retainDigit(t.left), setTree(proto, t.middle, i, x), retainDigit(t.right))
		}
		i -= t.middle.size
		return newDeep(retainDigit(t.left), retainTree(t.middle), setDigit(proto, t.right, i, x))
	}
	panic("pseq: set index out of range in empty tree")
}

// msetUpdate is one (index, value) request for mset (§4.3 mset).
type msetUpdate struct {
	Index int
	Value elem.Element
}

// applyMsetSorted applies pre-sorted, de-duplicated-by-index updates to t
// by repeated setTree; each update is O(log N), giving O(k log N) overall —
// within the O(k log N + k log k) bound of §4.3 once the caller's sort is
// counted (§4.3 mset: "sort the requests... walk the tree once..."; this
// implementation sorts and then applies each update independently rather
// than fusing the walk, trading a larger constant factor for much simpler,
// directly-testable code while keeping the same asymptotic bound).
func applyMsetSorted(proto elem.Protocol, t *tree, updates []msetUpdate) *tree {
	cur := retainTree(t)
	for _, u := range updates {
		next := setTree(proto, cur, u.Index, u.Value)
		releaseTree(cur, proto)
		cur = next
	}
	return cur
}
