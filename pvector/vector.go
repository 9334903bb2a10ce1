package pvector

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
)

// PVector is the record {count, shift, root, tail} of §3.1. It is an
// immutable value: every method returns a new PVector, and the receiver is
// left untouched and still valid.
type PVector struct {
	proto elem.Protocol
	count int
	shift uint
	root  *trieNode
	tail  *trieNode
}

// New returns the empty vector using proto as its Element Protocol, then
// extends it with items, mirroring the teacher's trie.New(model, ...)
// constructor pattern of taking the pluggable model first.
func New(proto elem.Protocol, items ...elem.Element) *PVector {
	v := empty(proto)
	for _, it := range items {
		v = v.Append(it)
	}
	return v
}

func empty(proto elem.Protocol) *PVector {
	if proto == nil {
		proto = elem.Default
	}
	return &PVector{proto: proto, count: 0, shift: bits, root: emptyNode, tail: emptyNode}
}

// Empty returns the empty vector for proto (§6.2 pvector()).
func Empty(proto elem.Protocol) *PVector { return empty(proto) }

// Len returns the number of elements.
func (v *PVector) Len() int { return v.count }

// tailOff returns the number of elements held in the root trie, i.e. the
// index of the first element in the tail (§3.1).
func tailOff(count int) int {
	if count < width {
		return 0
	}
	return ((count - 1) >> bits) << bits
}

func (v *PVector) tailOff() int { return tailOff(v.count) }

func (v *PVector) tailSize() int { return v.count - v.tailOff() }

// normalize converts a possibly-negative index into [0, count), returning
// an error if it falls outside that range even after adjustment (§9 "nodeFor
// bounds check": validate the normalized index explicitly).
func normalize(i, count int) (int, error) {
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return 0, perrors.IndexError(i, count)
	}
	return i, nil
}

// Index returns the element at i, supporting negative indices (§4.2 index).
func (v *PVector) Index(i int) (elem.Element, error) {
	idx, err := normalize(i, v.count)
	if err != nil {
		return nil, err
	}
	if idx >= v.tailOff() {
		return v.tail.items[idx&mask], nil
	}
	node := v.root
	for level := v.shift; level > 0; level -= bits {
		node = node.items[(idx>>level)&mask].(*trieNode)
	}
	return node.items[idx&mask], nil
}

// MustIndex panics instead of returning an error; used where the caller has
// already validated i (e.g. internal iteration).
func (v *PVector) MustIndex(i int) elem.Element {
	x, err := v.Index(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Append returns a new vector with x appended at the end (§4.2 append).
func (v *PVector) Append(x elem.Element) *PVector {
	ts := v.tailSize()
	if ts < width {
		newTail := newNode()
		for i := 0; i < ts; i++ {
			newTail.items[i] = v.proto.Retain(v.tail.items[i])
		}
		newTail.items[ts] = v.proto.Retain(x)
		v.root.rc.Retain()
		return &PVector{proto: v.proto, count: v.count + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	var newRoot *trieNode
	newShift := v.shift
	if (v.count >> bits) > (1 << v.shift) {
		newRoot = newNode()
		v.root.rc.Retain()
		newRoot.items[0] = v.root
		newRoot.items[1] = newPath(v.shift, v.tail)
		newShift = v.shift + bits
	} else {
		newRoot = pushTail(v.shift, v.count, v.root, v.tail, v.proto)
	}

	newTail := newNode()
	newTail.items[0] = v.proto.Retain(x)
	return &PVector{proto: v.proto, count: v.count + 1, shift: newShift, root: newRoot, tail: newTail}
}

// Set returns a new vector with index i replaced by x (§4.2 set, aka
// assoc). Setting at i == count delegates to Append.
func (v *PVector) Set(i int, x elem.Element) (*PVector, error) {
	n := v.count
	if i < 0 {
		i += n
	}
	if i == n {
		return v.Append(x), nil
	}
	if i < 0 || i > n {
		return nil, perrors.IndexError(i, n)
	}
	if i >= v.tailOff() {
		newTail := newNode()
		for idx := 0; idx < v.tailSize(); idx++ {
			if idx == i&mask {
				newTail.items[idx] = v.proto.Retain(x)
			} else {
				newTail.items[idx] = v.proto.Retain(v.tail.items[idx])
			}
		}
		v.root.rc.Retain()
		return &PVector{proto: v.proto, count: n, shift: v.shift, root: v.root, tail: newTail}, nil
	}
	newRoot := doAssoc(v.shift, v.root, i, x, v.proto)
	v.tail.rc.Retain()
	return &PVector{proto: v.proto, count: n, shift: v.shift, root: newRoot, tail: v.tail}, nil
}

// Slice returns the elements in [start, stop) with the given step, applying
// the host slice protocol's normalization (§4.2 slice, §6.2). step must be
// non-zero.
func (v *PVector) Slice(start, stop, step int) (*PVector, error) {
	indices := sliceIndices(v.count, start, stop, step)
	if len(indices) == 0 {
		return empty(v.proto), nil
	}
	if step == 1 && indices[0] == 0 && len(indices) == v.count {
		v.root.rc.Retain()
		v.tail.rc.Retain()
		return &PVector{proto: v.proto, count: v.count, shift: v.shift, root: v.root, tail: v.tail}, nil
	}
	out := empty(v.proto)
	for _, i := range indices {
		out = out.Append(v.MustIndex(i))
	}
	return out, nil
}

// sliceIndices mirrors the host slice protocol's PySlice_GetIndicesEx
// normalization: clamps start/stop to [0, length], handles negative step,
// and returns the concrete list of indices selected.
func sliceIndices(length, start, stop, step int) []int {
	if step == 0 {
		panic("pvector: slice step cannot be zero")
	}
	clamp := func(i, lo, hi int) int {
		if i < lo {
			return lo
		}
		if i > hi {
			return hi
		}
		return i
	}
	var idxs []int
	if step > 0 {
		if start < 0 {
			start += length
		}
		if stop < 0 {
			stop += length
		}
		start = clamp(start, 0, length)
		stop = clamp(stop, 0, length)
		for i := start; i < stop; i += step {
			idxs = append(idxs, i)
		}
	} else {
		if start < 0 {
			start += length
		}
		if stop < 0 {
			stop += length
		}
		start = clamp(start, -1, length-1)
		stop = clamp(stop, -1, length-1)
		for i := start; i > stop; i += step {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Extend consumes the elements yielded by next (a simple pull iterator
// mirroring the Element Protocol's iter/next of §6.1) into a copy of v,
// leaving v unchanged (§4.2 extend: "the copy exists precisely so that the
// input v is never mutated").
func (v *PVector) Extend(next func() (elem.Element, bool, error)) (*PVector, error) {
	out := v
	for {
		x, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = out.Append(x)
	}
}

// ExtendSlice is a convenience Extend over an in-memory slice of elements.
func (v *PVector) ExtendSlice(items []elem.Element) *PVector {
	out := v
	for _, it := range items {
		out = out.Append(it)
	}
	return out
}

// Equal reports element-wise equality with w.
func (v *PVector) Equal(w *PVector) (bool, error) {
	if v.count != w.count {
		return false, nil
	}
	for i := 0; i < v.count; i++ {
		a, b := v.MustIndex(i), w.MustIndex(i)
		eq, err := v.proto.Equal(a, b)
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

// ToSlice materializes the vector into a plain Go slice (§4.6 toList).
func (v *PVector) ToSlice() []elem.Element {
	out := make([]elem.Element, 0, v.count)
	it := v.Iterator()
	for it.Next() {
		out = append(out, v.proto.Retain(it.Value()))
	}
	return out
}

// Release drops v's reference to its root and tail, recursively freeing any
// nodes that become unshared. Call when a PVector value is no longer
// needed and was not already consumed by a transfer (e.g. into a new
// composite). Matches the destroy-time half of §3.3's ownership discipline.
func (v *PVector) Release() {
	releaseNode(v.root, v.shift, v.proto)
	releaseNode(v.tail, 0, v.proto)
}

// Retain increments the reference counts of v's internal structure and
// returns v, for callers that hand the same logical vector to two owners.
func (v *PVector) Retain() *PVector {
	v.root.rc.Retain()
	v.tail.rc.Retain()
	return v
}
