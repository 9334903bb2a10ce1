// Package pseq implements the 2-3 finger tree sequence of §3.2/§4.3:
// amortized O(1) access/modification at both ends, O(log N) split,
// concatenate, index, insert, and delete at arbitrary positions, with
// copy-on-write structural sharing between versions.
//
// The finger tree's middle holds nodes one level deeper than its digits;
// this implementation follows §9's recommended option (a) and uses a single
// depth-erased node type for every level, the same way pvector's trieNode
// is reused at every trie level with the level supplied by the caller
// rather than stored on the node.
//
// Ownership convention: every newX constructor here TAKES ownership
// of the *node/*digit/*tree arguments passed to it (the rule of
// transference of §4.1 resolved as "skip the retain"). A caller that wants
// to keep using a value after handing it to a constructor must call the
// matching retainX first. This keeps the common case — assembling brand
// new, as-yet-unshared pieces during a build — free of bookkeeping, and
// concentrates explicit retains at the points where a node is genuinely
// being shared between an old and a new tree (copy-on-write update sites).
package pseq

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
	"github.com/arriqaaq/pseq/refcount"
)

type nodeKind int

const (
	leafKind nodeKind = iota
	internalKind
)

// node is either a leaf (size 1, holding one element) or an internal node
// with 2 or 3 children one level deeper, with its subtree size cached
// (§3.2: "Size is cached on every node, digit and deep").
type node struct {
	rc       refcount.Counter
	kind     nodeKind
	size     int
	elt      elem.Element
	children []*node
}

// newLeaf takes ownership of the Protocol.Retain(x) it performs; i.e. it
// creates the one owning reference to x that the leaf holds for its
// lifetime.
func newLeaf(proto elem.Protocol, x elem.Element) *node {
	refcount.TrackAlloc()
	return &node{rc: refcount.New(), kind: leafKind, size: 1, elt: proto.Retain(x)}
}

// newInternal builds an internal node over 2 or 3 children, taking
// ownership of each (retain first if the caller still needs its own ref).
func newInternal(children ...*node) *node {
	perrors.Assertf(len(children) == 2 || len(children) == 3, "internal node must have 2 or 3 children, got %d", len(children))
	refcount.TrackAlloc()
	n := &node{rc: refcount.New(), kind: internalKind, children: make([]*node, len(children))}
	size := 0
	for i, c := range children {
		n.children[i] = c
		size += c.size
	}
	n.size = size
	return n
}

func retainNode(n *node) *node {
	if n != nil {
		n.rc.Retain()
	}
	return n
}

func releaseNode(n *node, proto elem.Protocol) {
	if n == nil {
		return
	}
	if !n.rc.Release() {
		return
	}
	refcount.TrackFree()
	if n.kind == leafKind {
		proto.Release(n.elt)
		return
	}
	for _, c := range n.children {
		releaseNode(c, proto)
	}
}

// digit is the 1..4-child "finger" at one end of a Deep tree (§3.2).
type digit struct {
	rc       refcount.Counter
	size     int
	children []*node
}

// newDigit takes ownership of each child, per the package's transfer
// convention.
func newDigit(children ...*node) *digit {
	perrors.Assertf(len(children) >= 1 && len(children) <= 4, "digit must have 1..4 children, got %d", len(children))
	refcount.TrackAlloc()
	d := &digit{rc: refcount.New(), children: make([]*node, len(children))}
	size := 0
	for i, c := range children {
		d.children[i] = c
		size += c.size
	}
	d.size = size
	return d
}

func retainDigit(d *digit) *digit {
	if d != nil {
		d.rc.Retain()
	}
	return d
}

func releaseDigit(d *digit, proto elem.Protocol) {
	if d == nil {
		return
	}
	if !d.rc.Release() {
		return
	}
	refcount.TrackFree()
	for _, c := range d.children {
		releaseNode(c, proto)
	}
}

// retainChildren returns a fresh slice of d's children, each retained: used
// when a borrowed digit's children are being copied into a new digit while
// the borrowed digit (and the tree that owns it) remains valid.
func retainChildren(d *digit) []*node {
	out := make([]*node, len(d.children))
	for i, c := range d.children {
		out[i] = retainNode(c)
	}
	return out
}
