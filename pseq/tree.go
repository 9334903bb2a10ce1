package pseq

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/refcount"
)

type treeKind int

const (
	emptyKind treeKind = iota
	singleKind
	deepKind
)

// tree is the finger tree proper (§3.2): Empty | Single(node) |
// Deep(left digit, middle tree-of-nodes, right digit). Its size is cached.
type tree struct {
	rc     refcount.Counter
	kind   treeKind
	size   int
	single *node
	left   *digit
	middle *tree
	right  *digit
}

// emptyTree is the shared, saturated-refcount empty finger tree (§3.2,
// §9 "Shared empty singleton").
var emptyTree = &tree{rc: refcount.Saturated(), kind: emptyKind}

// newSingle takes ownership of n.
func newSingle(n *node) *tree {
	refcount.TrackAlloc()
	return &tree{rc: refcount.New(), kind: singleKind, size: n.size, single: n}
}

// newDeep builds a Deep tree, taking ownership of left, middle, and right
// (retain first if the caller still needs its own reference).
func newDeep(left *digit, middle *tree, right *digit) *tree {
	refcount.TrackAlloc()
	return &tree{rc: refcount.New(), kind: deepKind, size: left.size + middle.size + right.size, left: left, middle: middle, right: right}
}

func retainTree(t *tree) *tree {
	if t != nil {
		t.rc.Retain()
	}
	return t
}

func releaseTree(t *tree, proto elem.Protocol) {
	if t == nil || t == emptyTree {
		return
	}
	if !t.rc.Release() {
		return
	}
	refcount.TrackFree()
	switch t.kind {
	case singleKind:
		releaseNode(t.single, proto)
	case deepKind:
		releaseDigit(t.left, proto)
		releaseTree(t.middle, proto)
		releaseDigit(t.right, proto)
	}
}

func (t *tree) Size() int { return t.size }
