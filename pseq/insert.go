package pseq

import "github.com/arriqaaq/pseq/elem"

// insertAt returns t with x inserted at position i (0<=i<=t.size), §4.3
// insert. Rather than the classic FInsert overflow-propagation data type,
// this splits the tree at i and glues the new leaf back in with concat and
// appendLeft/appendRight: the same O(log N) bound, built entirely from
// already-verified primitives (see DESIGN.md).
func insertAt(proto elem.Protocol, t *tree, i int, x elem.Element) *tree {
	if i <= 0 {
		return appendLeftElement(proto, t, x)
	}
	if i >= t.size {
		return appendRightElement(proto, t, x)
	}
	left, bumped, right := splitTree(proto, t, i)
	leftWithX := appendRight(left, newLeaf(proto, x))
	releaseTree(left, proto)
	rightWithBumped := appendLeft(right, bumped)
	releaseTree(right, proto)
	result := concat(proto, leftWithX, rightWithBumped)
	releaseTree(leftWithX, proto)
	releaseTree(rightWithBumped, proto)
	return result
}

// deleteAt returns t with the element at position i removed, §4.3 delete.
// Implemented as split-then-concat, like insertAt.
func deleteAt(proto elem.Protocol, t *tree, i int) *tree {
	left, leaf, right := splitTree(proto, t, i)
	releaseNode(leaf, proto)
	result := concat(proto, left, right)
	releaseTree(left, proto)
	releaseTree(right, proto)
	return result
}
