package pseq

import "github.com/arriqaaq/pseq/elem"

// reverseNode returns n with its children reversed (recursively); leaves are
// unaffected. n is borrowed.
func reverseNode(proto elem.Protocol, n *node) *node {
	if n.kind == leafKind {
		return newLeaf(proto, n.elt)
	}
	children := make([]*node, len(n.children))
	last := len(n.children) - 1
	for i, c := range n.children {
		children[last-i] = reverseNode(proto, c)
	}
	return newInternal(children...)
}

func reverseDigit(proto elem.Protocol, d *digit) *digit {
	children := make([]*node, len(d.children))
	last := len(d.children) - 1
	for i, c := range d.children {
		children[last-i] = reverseNode(proto, c)
	}
	return newDigit(children...)
}

// reverseTree returns a tree holding the same elements in reverse order
// (§4.3 reverse): swap left/right digits (each reversed in place), reverse
// the middle recursively, and reverse each node within it.
func reverseTree(proto elem.Protocol, t *tree) *tree {
	switch t.kind {
	case emptyKind:
		return emptyTree
	case singleKind:
		return newSingle(reverseNode(proto, t.single))
	default:
		return newDeep(reverseDigit(proto, t.right), reverseTree(proto, t.middle), reverseDigit(proto, t.left))
	}
}
