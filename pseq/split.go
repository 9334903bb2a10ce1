package pseq

import "github.com/arriqaaq/pseq/elem"

func retainSlice(nodes []*node) []*node {
	out := make([]*node, len(nodes))
	for i, c := range nodes {
		out[i] = retainNode(c)
	}
	return out
}

// splitDigitChildren locates the child of d containing offset i and
// returns the (retained) siblings before it, the (retained) child itself,
// and the (retained) siblings after it. d is borrowed.
func splitDigitChildren(d *digit, i int) (before []*node, hit *node, after []*node) {
	acc := 0
	for idx, c := range d.children {
		if i-acc < c.size {
			hit = retainNode(c)
			before = retainSlice(d.children[:idx])
			after = retainSlice(d.children[idx+1:])
			return
		}
		acc += c.size
	}
	panic("pseq: splitDigitChildren: index out of range")
}

// splitNodeChildren is splitDigitChildren's analogue for an internal node's
// 2-3 children.
func splitNodeChildren(n *node, i int) (before []*node, hit *node, after []*node) {
	acc := 0
	for idx, c := range n.children {
		if i-acc < c.size {
			hit = retainNode(c)
			before = retainSlice(n.children[:idx])
			after = retainSlice(n.children[idx+1:])
			return
		}
		acc += c.size
	}
	panic("pseq: splitNodeChildren: index out of range")
}

// maybeDigitToTree builds a tree directly from 0..3 owned nodes, matching
// §4.3's "promote ... via fromDigit" used when a split fragment has no
// surrounding middle to glue onto.
func maybeDigitToTree(nodes []*node) *tree {
	if len(nodes) == 0 {
		return emptyTree
	}
	return fromNodes(nodes)
}

// deepL builds a tree whose left digit is leftNodes (pulling a digit out of
// middle when leftNodes is empty), with the given middle and right digit.
// Takes ownership of middle and right.
func deepL(proto elem.Protocol, leftNodes []*node, middle *tree, right *digit) *tree {
	if len(leftNodes) == 0 {
		t := pullLeft(proto, middle, right)
		releaseTree(middle, proto)
		releaseDigit(right, proto)
		return t
	}
	return newDeep(newDigit(leftNodes...), middle, right)
}

// deepR is deepL's mirror image: the right digit is rightNodes.
func deepR(proto elem.Protocol, left *digit, middle *tree, rightNodes []*node) *tree {
	if len(rightNodes) == 0 {
		t := pullRight(proto, left, middle)
		releaseDigit(left, proto)
		releaseTree(middle, proto)
		return t
	}
	return newDeep(left, middle, newDigit(rightNodes...))
}

// splitTree is §4.3 splitView's core: O(log N), locates the child
// containing index i, splits surrounding children into left/right
// fragments, and recurses into the located child. t is borrowed; the three
// results are owned by the caller.
func splitTree(proto elem.Protocol, t *tree, i int) (*tree, *node, *tree) {
	switch t.kind {
	case singleKind:
		return emptyTree, retainNode(t.single), emptyTree
	case deepKind:
		if i < t.left.size {
			before, hit, after := splitDigitChildren(t.left, i)
			left := maybeDigitToTree(before)
			right := deepL(proto, after, retainTree(t.middle), retainDigit(t.right))
			return left, hit, right
		}
		i -= t.left.size
		if i < t.middle.size {
			ml, xs, mr := splitTree(proto, t.middle, i)
			before, hit, after := splitNodeChildren(xs, i-ml.size)
			releaseNode(xs, proto)
			left := deepR(proto, retainDigit(t.left), ml, before)
			right := deepL(proto, after, mr, retainDigit(t.right))
			return left, hit, right
		}
		i -= t.middle.size
		before, hit, after := splitDigitChildren(t.right, i)
		left := deepR(proto, retainDigit(t.left), retainTree(t.middle), before)
		right := maybeDigitToTree(after)
		return left, hit, right
	}
	panic("pseq: splitTree of empty tree")
}

// takeLeftNode returns the leaf at position i together with the tree of
// everything strictly before it, releasing the discarded right fragment
// (§4.3 takeLeft).
func takeLeftNode(proto elem.Protocol, t *tree, i int) (*node, *tree) {
	left, leaf, right := splitTree(proto, t, i)
	releaseTree(right, proto)
	return leaf, left
}

// takeRightNode is takeLeftNode's mirror: the leaf plus everything after it.
func takeRightNode(proto elem.Protocol, t *tree, i int) (*node, *tree) {
	left, leaf, right := splitTree(proto, t, i)
	releaseTree(left, proto)
	return leaf, right
}

// groupGlue packs 2..8 same-depth nodes into 1..3 internal 2/3-nodes, the
// bounded-arity special case of §4.3 fromIterable's remainder pattern used
// by concat's "glue".
func groupGlue(nodes []*node) []*node {
	switch len(nodes) {
	case 2:
		return []*node{newInternal(nodes[0], nodes[1])}
	case 3:
		return []*node{newInternal(nodes[0], nodes[1], nodes[2])}
	case 4:
		return []*node{newInternal(nodes[0], nodes[1]), newInternal(nodes[2], nodes[3])}
	case 5:
		return []*node{newInternal(nodes[0], nodes[1], nodes[2]), newInternal(nodes[3], nodes[4])}
	case 6:
		return []*node{newInternal(nodes[0], nodes[1], nodes[2]), newInternal(nodes[3], nodes[4], nodes[5])}
	case 7:
		return []*node{newInternal(nodes[0], nodes[1], nodes[2]), newInternal(nodes[3], nodes[4]), newInternal(nodes[5], nodes[6])}
	case 8:
		return []*node{newInternal(nodes[0], nodes[1], nodes[2]), newInternal(nodes[3], nodes[4], nodes[5]), newInternal(nodes[6], nodes[7])}
	}
	panic("pseq: concat glue must have 2..8 nodes")
}

// concat is §4.3 concat: the classic finger-tree concatenation, O(log
// min(|xs|,|ys|)). Both arguments are borrowed.
func concat(proto elem.Protocol, xs, ys *tree) *tree {
	switch {
	case xs.kind == emptyKind:
		return retainTree(ys)
	case ys.kind == emptyKind:
		return retainTree(xs)
	case xs.kind == singleKind:
		return appendLeft(ys, retainNode(xs.single))
	case ys.kind == singleKind:
		return appendRight(xs, retainNode(ys.single))
	default:
		glue := append(retainChildren(xs.right), retainChildren(ys.left)...)
		groups := groupGlue(glue)
		innerMiddle := concat(proto, xs.middle, ys.middle)
		for k := len(groups) - 1; k >= 0; k-- {
			next := appendLeft(innerMiddle, groups[k])
			releaseTree(innerMiddle, proto)
			innerMiddle = next
		}
		return newDeep(retainDigit(xs.left), innerMiddle, retainDigit(ys.right))
	}
}
