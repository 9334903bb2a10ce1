package pseq

import (
	"sort"

	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
	"github.com/arriqaaq/pseq/refcount"
)

// PSequence is the public 2-3 finger tree sequence of §3.2/§6.3: O(1)
// amortized access at both ends, O(log N) indexed access/update/insert/
// delete/split/concatenate, with persistent, structurally-shared versions.
type PSequence struct {
	proto elem.Protocol
	t     *tree
}

// New builds a PSequence holding items, in order.
func New(proto elem.Protocol, items ...elem.Element) *PSequence {
	leaves := make([]*node, len(items))
	for i, x := range items {
		leaves[i] = newLeaf(proto, x)
	}
	return &PSequence{proto: proto, t: fromLeaves(proto, leaves)}
}

// Empty returns the empty sequence under proto.
func Empty(proto elem.Protocol) *PSequence {
	return &PSequence{proto: proto, t: emptyTree}
}

func wrap(proto elem.Protocol, t *tree) *PSequence {
	return &PSequence{proto: proto, t: t}
}

// Len returns the number of elements.
func (s *PSequence) Len() int { return s.t.size }

func normalizeIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, perrors.IndexError(i, n)
	}
	return i, nil
}

// Index returns the element at i (negative indices count from the end).
func (s *PSequence) Index(i int) (elem.Element, error) {
	idx, err := normalizeIndex(i, s.t.size)
	if err != nil {
		return nil, err
	}
	return indexTree(s.t, idx), nil
}

// MustIndex panics (via Assertf) instead of returning an error.
func (s *PSequence) MustIndex(i int) elem.Element {
	x, err := s.Index(i)
	perrors.Assertf(err == nil, "pseq: MustIndex: %v", err)
	return x
}

// Set returns a copy with index i replaced by x.
func (s *PSequence) Set(i int, x elem.Element) (*PSequence, error) {
	idx, err := normalizeIndex(i, s.t.size)
	if err != nil {
		return nil, err
	}
	return wrap(s.proto, setTree(s.proto, s.t, idx, x)), nil
}

// MSet applies multiple (index, value) updates in one call (§4.3 mset),
// in ascending index order, each by its own set.
func (s *PSequence) MSet(updates map[int]elem.Element) (*PSequence, error) {
	list := make([]msetUpdate, 0, len(updates))
	for i, x := range updates {
		idx, err := normalizeIndex(i, s.t.size)
		if err != nil {
			return nil, err
		}
		list = append(list, msetUpdate{Index: idx, Value: x})
	}
	sort.Slice(list, func(a, b int) bool { return list[a].Index < list[b].Index })
	return wrap(s.proto, applyMsetSorted(s.proto, s.t, list)), nil
}

// AppendLeft returns a copy with x prepended.
func (s *PSequence) AppendLeft(x elem.Element) *PSequence {
	return wrap(s.proto, appendLeftElement(s.proto, s.t, x))
}

// AppendRight returns a copy with x appended.
func (s *PSequence) AppendRight(x elem.Element) *PSequence {
	return wrap(s.proto, appendRightElement(s.proto, s.t, x))
}

// ViewLeft returns the first element and the remaining sequence. Errors if
// empty.
func (s *PSequence) ViewLeft() (elem.Element, *PSequence, error) {
	if s.t.size == 0 {
		return nil, nil, perrors.NotFoundError("pseq.ViewLeft")
	}
	n, rest := viewLeft(s.proto, s.t)
	x := s.proto.Retain(n.elt)
	releaseNode(n, s.proto)
	return x, wrap(s.proto, rest), nil
}

// ViewRight is ViewLeft's mirror image.
func (s *PSequence) ViewRight() (elem.Element, *PSequence, error) {
	if s.t.size == 0 {
		return nil, nil, perrors.NotFoundError("pseq.ViewRight")
	}
	n, rest := viewRight(s.proto, s.t)
	x := s.proto.Retain(n.elt)
	releaseNode(n, s.proto)
	return x, wrap(s.proto, rest), nil
}

// SplitAt splits the sequence into (first i elements, rest), §4.3 splitView.
func (s *PSequence) SplitAt(i int) (*PSequence, *PSequence, error) {
	if i < 0 {
		i = 0
	}
	if i > s.t.size {
		i = s.t.size
	}
	left := takeFirst(s.proto, s.t, i)
	right := dropFirst(s.proto, s.t, i)
	return wrap(s.proto, left), wrap(s.proto, right), nil
}

// View splits the sequence at i and also returns the element that sat there
// (§6.3 view, distinct from splitat in that it surfaces the split element
// itself rather than discarding it).
func (s *PSequence) View(i int) (*PSequence, elem.Element, *PSequence, error) {
	idx, err := normalizeIndex(i, s.t.size)
	if err != nil {
		return nil, nil, nil, err
	}
	left, hit, right := splitTree(s.proto, s.t, idx)
	x := s.proto.Retain(hit.elt)
	releaseNode(hit, s.proto)
	return wrap(s.proto, left), x, wrap(s.proto, right), nil
}

// ViewMulti is View generalized to several positions at once (§6.3's
// multi-index view: (left₀, e₀, left₁, e₁, …, rest)), splitting out one
// fragment and element per index and threading the remainder forward.
// indices must be given in strictly ascending order.
func (s *PSequence) ViewMulti(indices ...int) ([]*PSequence, []elem.Element, *PSequence, error) {
	norm := make([]int, len(indices))
	for k, i := range indices {
		idx, err := normalizeIndex(i, s.t.size)
		if err != nil {
			return nil, nil, nil, err
		}
		if k > 0 && idx <= norm[k-1] {
			return nil, nil, nil, perrors.UnsortedIndicesError(idx, norm[k-1])
		}
		norm[k] = idx
	}
	lefts := make([]*PSequence, len(norm))
	elems := make([]elem.Element, len(norm))
	rest := retainTree(s.t)
	consumed := 0
	for k, idx := range norm {
		left, hit, right := splitTree(s.proto, rest, idx-consumed)
		releaseTree(rest, s.proto)
		elems[k] = s.proto.Retain(hit.elt)
		releaseNode(hit, s.proto)
		lefts[k] = wrap(s.proto, left)
		rest = right
		consumed = idx + 1
	}
	return lefts, elems, wrap(s.proto, rest), nil
}

// Extend returns a copy with other's elements appended.
func (s *PSequence) Extend(other *PSequence) *PSequence {
	return wrap(s.proto, concat(s.proto, s.t, other.t))
}

// ExtendLeft returns a copy with other's elements prepended.
func (s *PSequence) ExtendLeft(other *PSequence) *PSequence {
	return wrap(s.proto, concat(s.proto, other.t, s.t))
}

// Insert returns a copy with x inserted at position i (0<=i<=Len()).
func (s *PSequence) Insert(i int, x elem.Element) (*PSequence, error) {
	if i < 0 || i > s.t.size {
		return nil, perrors.IndexError(i, s.t.size+1)
	}
	return wrap(s.proto, insertAt(s.proto, s.t, i, x)), nil
}

// Delete returns a copy with the element at i removed.
func (s *PSequence) Delete(i int) (*PSequence, error) {
	idx, err := normalizeIndex(i, s.t.size)
	if err != nil {
		return nil, err
	}
	return wrap(s.proto, deleteAt(s.proto, s.t, idx)), nil
}

// Remove returns a copy with the first occurrence of x removed, or an error
// if x is not present.
func (s *PSequence) Remove(x elem.Element) (*PSequence, error) {
	i, err := indexOfElement(s.proto, s.t, x)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, perrors.NotFoundError("pseq.Remove")
	}
	return wrap(s.proto, deleteAt(s.proto, s.t, i)), nil
}

// GetSlice returns the sub-sequence selected by the (start, stop, step)
// slice protocol. Unlike PVector.Slice, negative start and stop are not
// counted from the end; they are clamped like any other out-of-range bound.
func (s *PSequence) GetSlice(start, stop, step int) (*PSequence, error) {
	if step == 0 {
		return nil, perrors.StepError()
	}
	return wrap(s.proto, getSlice(s.proto, s.t, start, stop, step)), nil
}

// SetSlice replaces the sub-sequence selected by (start, stop, step) with
// values.
func (s *PSequence) SetSlice(start, stop, step int, values []elem.Element) (*PSequence, error) {
	if step == 0 {
		return nil, perrors.StepError()
	}
	t, err := setSlice(s.proto, s.t, start, stop, step, values)
	if err != nil {
		return nil, err
	}
	return wrap(s.proto, t), nil
}

// DeleteSlice removes the sub-sequence selected by (start, stop, step).
func (s *PSequence) DeleteSlice(start, stop, step int) (*PSequence, error) {
	if step == 0 {
		return nil, perrors.StepError()
	}
	return wrap(s.proto, deleteSlice(s.proto, s.t, start, stop, step)), nil
}

// Reverse returns the sequence with its elements in reverse order.
func (s *PSequence) Reverse() *PSequence {
	return wrap(s.proto, reverseTree(s.proto, s.t))
}

// IndexOf returns the position of the first element equal to x, or -1 and
// an ErrValueNotFound error if x is not present.
func (s *PSequence) IndexOf(x elem.Element) (int, error) {
	i, err := indexOfElement(s.proto, s.t, x)
	if err != nil {
		return -1, err
	}
	if i < 0 {
		return -1, perrors.NotFoundError("pseq.IndexOf")
	}
	return i, nil
}

// Count returns the number of elements equal to x.
func (s *PSequence) Count(x elem.Element) (int, error) {
	return countElement(s.proto, s.t, x)
}

// Contains reports whether x appears in the sequence.
func (s *PSequence) Contains(x elem.Element) (bool, error) {
	i, err := indexOfElement(s.proto, s.t, x)
	return i >= 0, err
}

// ChunksOf splits the sequence into consecutive chunks of at most k
// elements (§6.3 chunksof).
func (s *PSequence) ChunksOf(k int) []*PSequence {
	trees := chunksOf(s.proto, s.t, k)
	out := make([]*PSequence, len(trees))
	for i, t := range trees {
		out[i] = wrap(s.proto, t)
	}
	return out
}

// Repeat returns the sequence repeated n times (supplemented feature, see
// DESIGN.md).
func (s *PSequence) Repeat(n int) (*PSequence, error) {
	t, err := repeatTree(s.proto, s.t, n)
	if err != nil {
		return nil, err
	}
	return wrap(s.proto, t), nil
}

// Sort returns the sequence's elements sorted according to less, rebuilding
// the tree from the materialized order (§6.3: chosen over an in-place
// tree-surgery sort since finger trees give no locality benefit for a full
// reordering).
func (s *PSequence) Sort(less func(a, b elem.Element) bool) *PSequence {
	items := s.ToSlice()
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return New(s.proto, items...)
}

// ToSlice materializes the sequence into a plain Go slice.
func (s *PSequence) ToSlice() []elem.Element {
	out := make([]elem.Element, 0, s.t.size)
	it := newIterator(s.proto, s.t)
	for it.Next() {
		out = append(out, s.proto.Retain(it.Value()))
	}
	return out
}

// Iterator returns a left-to-right iterator over the sequence.
func (s *PSequence) Iterator() *Iterator { return newIterator(s.proto, s.t) }

// ReverseIterator returns an iterator that walks the sequence right to
// left (§4.4's direction flag; §6.3 reversed), without materializing a
// reversed copy the way Reverse does.
func (s *PSequence) ReverseIterator() *Iterator { return newReverseIterator(s.proto, s.t) }

// Equal reports element-wise equality with w.
func (s *PSequence) Equal(w *PSequence) (bool, error) {
	if s.t.size != w.t.size {
		return false, nil
	}
	a, b := newIterator(s.proto, s.t), newIterator(s.proto, w.t)
	for a.Next() && b.Next() {
		eq, err := s.proto.Equal(a.Value(), b.Value())
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

// Hash implements §4.2/§6.4's tuple-hash mixing formula.
func (s *PSequence) Hash() int { return hashTree(s.proto, s.t) }

// Repr renders the sequence for debug output.
func (s *PSequence) Repr() string { return reprTree(s.proto, s.t) }

// Retain increments the sequence's reference count and returns s.
func (s *PSequence) Retain() *PSequence {
	retainTree(s.t)
	return s
}

// Release drops one reference, freeing the underlying tree once unshared.
func (s *PSequence) Release() { releaseTree(s.t, s.proto) }

// Stats exposes refcount's debug allocation counters. They are
// process-wide: pvector's node allocations are counted in them too.
func Stats() refcount.Stats {
	return refcount.Stats{Allocated: refcount.Allocated(), Freed: refcount.Freed()}
}
