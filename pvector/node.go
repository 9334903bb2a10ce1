// Package pvector implements the bit-partitioned trie vector of §3.1/§4.2:
// O(log32 N) indexed lookup and amortized O(1) right-end append via a
// cached tail leaf, with copy-on-write structural sharing between versions.
package pvector

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/refcount"
)

const (
	bits  = 5 // log2(width); the spec's "log2B"
	width = 1 << bits
	mask  = width - 1
)

// trieNode is the single node type for every level of the trie, including
// the tail leaf. Its items hold either child *trieNode pointers (when the
// node's level, supplied by the traversing algorithm, is > 0) or
// elem.Element handles (when level == 0). The level is never stored on the
// node itself, per §3.1: "The level is not stored in the node; it is
// supplied by the traversing algorithm from shift."
type trieNode struct {
	rc    refcount.Counter
	items [width]interface{}
}

// emptyNode is the shared, saturated-refcount empty node used for both the
// root and tail of the empty vector (§3.2/§9 "Shared empty singleton").
var emptyNode = &trieNode{rc: refcount.Saturated()}

func newNode() *trieNode {
	refcount.TrackAlloc()
	return &trieNode{rc: refcount.New()}
}

// cloneNode copies n's items array into a freshly allocated node and
// retains every non-nil child (or element, at level 0), per §4.1: "A node
// whose children array was filled by memcpy from another node's array must
// then retain every non-null child; otherwise the originals' counts are
// wrong."
func cloneNode(n *trieNode, level uint, proto elem.Protocol) *trieNode {
	cp := newNode()
	cp.items = n.items
	for i, it := range cp.items {
		if it == nil {
			continue
		}
		if level == 0 {
			cp.items[i] = proto.Retain(it)
		} else {
			it.(*trieNode).rc.Retain()
		}
	}
	return cp
}

// releaseNode decrements n's count and, if it reaches zero, recursively
// releases n's children (interior) or elements (leaf, level == 0).
func releaseNode(n *trieNode, level uint, proto elem.Protocol) {
	if n == nil || n == emptyNode {
		return
	}
	if !n.rc.Release() {
		return
	}
	refcount.TrackFree()
	for _, it := range n.items {
		if it == nil {
			continue
		}
		if level == 0 {
			proto.Release(it)
		} else {
			releaseNode(it.(*trieNode), level-bits, proto)
		}
	}
}

// newPath returns a chain of freshly allocated, empty interior nodes of
// depth level/bits, ending in a retained reference to node. At level == 0 it
// returns node itself, retained (§4.2 newPath).
func newPath(level uint, node *trieNode) *trieNode {
	if level == 0 {
		node.rc.Retain()
		return node
	}
	top := newNode()
	top.items[0] = newPath(level-bits, node)
	return top
}

// pushTail copies parent and grafts a new owning reference to tail onto the
// spine addressed by count, per §4.2 pushTail. Exactly one new owning
// reference to tail is created along the freshly allocated spine; the
// clone's transient over-retain of the slot being replaced is corrected by
// releasing it before recursing (or before overwriting, at the bottom).
func pushTail(level uint, count int, parent, tail *trieNode, proto elem.Protocol) *trieNode {
	cp := cloneNode(parent, level, proto)
	sub := ((count - 1) >> level) & mask
	if level == bits {
		if old := cp.items[sub]; old != nil {
			releaseNode(old.(*trieNode), 0, proto)
		}
		tail.rc.Retain()
		cp.items[sub] = tail
		return cp
	}
	if old := cp.items[sub]; old != nil {
		child := old.(*trieNode)
		releaseNode(child, level-bits, proto)
		cp.items[sub] = pushTail(level-bits, count, child, tail, proto)
	} else {
		cp.items[sub] = newPath(level-bits, tail)
	}
	return cp
}

// doAssoc implements §4.2 set()'s trie descent: at each non-leaf level it
// copies the node and recurses into the targeted slot without retaining the
// slot about to be overwritten (equivalent to, but cheaper than, retaining
// every slot via cloneNode and then releasing the one being replaced).
func doAssoc(level uint, node *trieNode, i int, x elem.Element, proto elem.Protocol) *trieNode {
	cp := newNode()
	cp.items = node.items
	sub := (i >> level) & mask
	if level == 0 {
		for idx, it := range cp.items {
			if it == nil || idx == sub {
				continue
			}
			proto.Retain(it)
		}
		cp.items[sub] = proto.Retain(x)
		return cp
	}
	for idx, it := range cp.items {
		if it == nil || idx == sub {
			continue
		}
		it.(*trieNode).rc.Retain()
	}
	cp.items[sub] = doAssoc(level-bits, node.items[sub].(*trieNode), i, x, proto)
	return cp
}
