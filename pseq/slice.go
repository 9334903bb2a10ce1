package pseq

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
)

// sliceIndices normalizes a Python-slice-protocol (start, stop, step) triple
// against length into the concrete list of indices it selects, clamping out
// of range bounds. Negative start and stop are not counted from the end:
// they are clamped like any other out-of-range bound. step must be non-zero.
func sliceIndices(length, start, stop, step int) []int {
	if step > 0 {
		if start < 0 {
			start = 0
		}
		if stop > length {
			stop = length
		}
		if start >= stop {
			return nil
		}
		out := make([]int, 0, (stop-start+step-1)/step)
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
		return out
	}
	if start > length-1 {
		start = length - 1
	}
	if stop < -1 {
		stop = -1
	}
	if start <= stop {
		return nil
	}
	out := make([]int, 0, (start-stop-step-1)/(-step))
	for i := start; i > stop; i += step {
		out = append(out, i)
	}
	return out
}

// dropFirst returns t without its first n elements (0<=n<=t.size). t is
// borrowed.
func dropFirst(proto elem.Protocol, t *tree, n int) *tree {
	if n <= 0 {
		return retainTree(t)
	}
	if n >= t.size {
		return emptyTree
	}
	_, leaf, right := splitTree(proto, t, n-1)
	releaseNode(leaf, proto)
	return right
}

// takeFirst returns t's first n elements (0<=n<=t.size). t is borrowed.
func takeFirst(proto elem.Protocol, t *tree, n int) *tree {
	if n >= t.size {
		return retainTree(t)
	}
	if n <= 0 {
		return emptyTree
	}
	left, leaf, right := splitTree(proto, t, n)
	releaseNode(leaf, proto)
	releaseTree(right, proto)
	return left
}

// subrange returns the contiguous [start, start+length) region of t. t is
// borrowed.
func subrange(proto elem.Protocol, t *tree, start, length int) *tree {
	without := dropFirst(proto, t, start)
	result := takeFirst(proto, without, length)
	releaseTree(without, proto)
	return result
}

// gatherElements materializes the elements at the given (already-normalized)
// indices from t, retained per proto. t is borrowed.
func gatherElements(proto elem.Protocol, t *tree, indices []int) []elem.Element {
	out := make([]elem.Element, len(indices))
	for i, idx := range indices {
		out[i] = proto.Retain(indexTree(t, idx))
	}
	return out
}

// buildLeaves wraps a slice of elements as fresh leaf nodes. items must
// already carry one internally-owned reference each (as gatherElements
// produces via proto.Retain on values read out of this same tree);
// newLeaf's own retain makes that ownership the leaf's, so the gather's
// reference is released right after. Contrast buildLeavesBorrowed, used for
// values a caller hands in from outside, which owns no such extra
// reference to begin with.
func buildLeaves(proto elem.Protocol, items []elem.Element) []*node {
	leaves := make([]*node, len(items))
	for i, x := range items {
		leaves[i] = newLeaf(proto, x)
		proto.Release(x) // newLeaf took its own retain; drop the gather's.
	}
	return leaves
}

// getSlice implements §4.3/§6.3 slice read support for arbitrary step. t is
// borrowed.
func getSlice(proto elem.Protocol, t *tree, start, stop, step int) *tree {
	if step == 1 {
		if start >= stop {
			return emptyTree
		}
		return subrange(proto, t, start, stop-start)
	}
	indices := sliceIndices(t.size, start, stop, step)
	items := gatherElements(proto, t, indices)
	return fromLeaves(proto, buildLeaves(proto, items))
}

// deleteSlice removes the elements selected by (start, stop, step) from t.
// For step==1 this is a direct split/concat; for any other step the result
// is rebuilt from the surviving elements (materialize-and-rebuild, O(N)
// rather than the spec's whole-subtree-skipping O(log N) descent).
func deleteSlice(proto elem.Protocol, t *tree, start, stop, step int) *tree {
	if step == 1 {
		if start >= stop {
			return retainTree(t)
		}
		before := takeFirst(proto, t, start)
		after := dropFirst(proto, t, stop)
		result := concat(proto, before, after)
		releaseTree(before, proto)
		releaseTree(after, proto)
		return result
	}
	doomed := make(map[int]bool)
	for _, idx := range sliceIndices(t.size, start, stop, step) {
		doomed[idx] = true
	}
	survivors := make([]elem.Element, 0, t.size)
	for i := 0; i < t.size; i++ {
		if !doomed[i] {
			survivors = append(survivors, proto.Retain(indexTree(t, i)))
		}
	}
	return fromLeaves(proto, buildLeaves(proto, survivors))
}

// setSlice implements §6.3 slice assignment. For step==1 the replaced region
// may change length (classic splice semantics); for any other step the
// number of values must equal the number of selected indices.
func setSlice(proto elem.Protocol, t *tree, start, stop, step int, values []elem.Element) (*tree, error) {
	if step == 1 {
		if start > stop {
			stop = start
		}
		before := takeFirst(proto, t, start)
		after := dropFirst(proto, t, stop)
		middle := fromLeaves(proto, buildLeavesBorrowed(proto, values))
		tmp := concat(proto, before, middle)
		releaseTree(before, proto)
		releaseTree(middle, proto)
		result := concat(proto, tmp, after)
		releaseTree(tmp, proto)
		releaseTree(after, proto)
		return result, nil
	}
	indices := sliceIndices(t.size, start, stop, step)
	if len(indices) != len(values) {
		return nil, perrors.ValueMismatchError(len(indices), len(values))
	}
	updates := make([]msetUpdate, len(indices))
	for i, idx := range indices {
		updates[i] = msetUpdate{Index: idx, Value: values[i]}
	}
	return applyMsetSorted(proto, t, updates), nil
}

// buildLeavesBorrowed is buildLeaves for values handed in directly by an
// external caller (e.g. SetSlice's values), matching the borrowed-argument
// convention every other public entry point uses (New, Insert, AppendLeft,
// AppendRight): the caller's own reference is left alone, and newLeaf's
// retain creates the one reference the new leaf owns. Unlike buildLeaves,
// there is no extra gather-side reference to release afterward.
func buildLeavesBorrowed(proto elem.Protocol, items []elem.Element) []*node {
	leaves := make([]*node, len(items))
	for i, x := range items {
		leaves[i] = newLeaf(proto, x)
	}
	return leaves
}
