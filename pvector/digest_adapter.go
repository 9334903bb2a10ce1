package pvector

import (
	"github.com/arriqaaq/pseq/pseq/digest"
	"github.com/arriqaaq/pseq/elem"
)

// leafDigestView adapts a single stored element to digest.Node.
type leafDigestView struct {
	proto elem.Protocol
	x     elem.Element
}

func (l leafDigestView) Size() int             { return 1 }
func (l leafDigestView) Arity() int            { return 0 }
func (l leafDigestView) Child(int) digest.Node { return nil }
func (l leafDigestView) LeafValue() (int, bool) { return l.proto.Hash(l.x), true }

// trieDigestView adapts a trie node's live (non-nil) slots at a given level
// to digest.Node, the same structural-fingerprint abstraction pseq.PSequence
// uses, without exposing trieNode outside the package. level follows the
// same convention as cloneNode/releaseNode: items hold elements when
// level == 0, *trieNode children otherwise.
type trieDigestView struct {
	proto elem.Protocol
	n     *trieNode
	level uint
}

func (v trieDigestView) live() []interface{} {
	out := make([]interface{}, 0, width)
	for _, it := range v.n.items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

func (v trieDigestView) Size() int {
	live := v.live()
	if v.level == 0 {
		return len(live)
	}
	size := 0
	for _, it := range live {
		size += trieDigestView{proto: v.proto, n: it.(*trieNode), level: v.level - bits}.Size()
	}
	return size
}

func (v trieDigestView) Arity() int { return len(v.live()) }

func (v trieDigestView) LeafValue() (int, bool) { return 0, false }

func (v trieDigestView) Child(i int) digest.Node {
	it := v.live()[i]
	if v.level == 0 {
		return leafDigestView{proto: v.proto, x: it.(elem.Element)}
	}
	return trieDigestView{proto: v.proto, n: it.(*trieNode), level: v.level - bits}
}

// rootTailView glues the root trie and tail buffer together as the two
// children of a synthetic top-level node, matching §3.1's {root, tail} pair.
type rootTailView struct {
	root digest.Node
	tail digest.Node
}

func (r rootTailView) Size() int              { return r.root.Size() + r.tail.Size() }
func (r rootTailView) Arity() int             { return 2 }
func (r rootTailView) LeafValue() (int, bool) { return 0, false }
func (r rootTailView) Child(i int) digest.Node {
	if i == 0 {
		return r.root
	}
	return r.tail
}

// StructuralDigest computes a blake2b-256 structural fingerprint of the
// vector's root trie and tail (domain-stack addition; see DESIGN.md).
func (v *PVector) StructuralDigest() [32]byte {
	root := trieDigestView{proto: v.proto, n: v.root, level: v.shift}
	tail := trieDigestView{proto: v.proto, n: v.tail, level: 0}
	return digest.StructuralDigest(rootTailView{root: root, tail: tail})
}
