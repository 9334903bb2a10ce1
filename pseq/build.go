package pseq

import "github.com/arriqaaq/pseq/elem"

// fromLeaves builds a balanced finger tree of depth O(log n) from n fresh
// leaves in O(n) (§4.3 fromIterable). All leaves are freshly owned by this
// call (transfer convention: nothing here is shared with any other tree).
func fromLeaves(proto elem.Protocol, leaves []*node) *tree {
	return fromNodes(leaves)
}

// fromNodes builds a finger tree whose leaves (at whatever depth nodes sit)
// are exactly the given owned node slice, in its given order. This is the
// recursive engine behind fromIterable, and is reused by splitView's
// "pack surrounding children back into a tree" step (§4.3 splitView,
// "split surrounding children into left and right fragments via
// fromNodes").
func fromNodes(nodes []*node) *tree {
	n := len(nodes)
	switch {
	case n == 0:
		return emptyTree
	case n == 1:
		return newSingle(nodes[0])
	case n <= 8:
		mid := n / 2
		if mid < 1 {
			mid = 1
		}
		if n-mid > 4 {
			mid = n - 4
		}
		if mid > 4 {
			mid = 4
		}
		left := newDigit(nodes[:mid]...)
		right := newDigit(nodes[mid:]...)
		return newDeep(left, emptyTree, right)
	default:
		left := newDigit(nodes[:3]...)
		right := newDigit(nodes[n-3:]...)
		grouped := groupInternal(nodes[3 : n-3])
		middle := fromNodes(grouped)
		return newDeep(left, middle, right)
	}
}

// groupInternal packs a run of same-depth owned nodes into internal 2- or
// 3-ary nodes, following the remainder pattern of §4.3 fromIterable:
//
//	remainder 0: all groups size 3
//	remainder 1: the last two groups become pairs (2+2)
//	remainder 2: the last two groups become (3+2)
func groupInternal(nodes []*node) []*node {
	m := len(nodes)
	if m == 0 {
		return nil
	}
	switch m % 3 {
	case 0:
		return groupsOf3(nodes)
	case 1:
		head, tail := nodes[:m-4], nodes[m-4:]
		groups := groupsOf3(head)
		groups = append(groups, newInternal(tail[0], tail[1]), newInternal(tail[2], tail[3]))
		return groups
	default: // 2
		head, tail := nodes[:m-5], nodes[m-5:]
		groups := groupsOf3(head)
		groups = append(groups, newInternal(tail[0], tail[1], tail[2]), newInternal(tail[3], tail[4]))
		return groups
	}
}

func groupsOf3(nodes []*node) []*node {
	out := make([]*node, 0, (len(nodes)+2)/3)
	for i := 0; i < len(nodes); i += 3 {
		out = append(out, newInternal(nodes[i], nodes[i+1], nodes[i+2]))
	}
	return out
}
