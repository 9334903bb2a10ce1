package pseq

import (
	"github.com/arriqaaq/pseq/pseq/digest"
	"github.com/arriqaaq/pseq/elem"
)

// digestView adapts a tree/digit/node triple to digest.Node without
// exposing any of pseq's internal types outside the package.
type digestView struct {
	proto elem.Protocol
	t     *tree
	d     *digit
	n     *node
}

func (v digestView) Size() int {
	switch {
	case v.t != nil:
		return v.t.size
	case v.d != nil:
		return v.d.size
	default:
		return v.n.size
	}
}

func (v digestView) LeafValue() (int, bool) {
	if v.n != nil && v.n.kind == leafKind {
		return v.proto.Hash(v.n.elt), true
	}
	return 0, false
}

func (v digestView) Arity() int {
	switch {
	case v.t != nil:
		switch v.t.kind {
		case emptyKind:
			return 0
		case singleKind:
			return 1
		default:
			return 3 // left digit, middle tree, right digit
		}
	case v.d != nil:
		return len(v.d.children)
	default:
		if v.n.kind == leafKind {
			return 0
		}
		return len(v.n.children)
	}
}

func (v digestView) Child(i int) digest.Node {
	switch {
	case v.t != nil:
		if v.t.kind == singleKind {
			return digestView{proto: v.proto, n: v.t.single}
		}
		switch i {
		case 0:
			return digestView{proto: v.proto, d: v.t.left}
		case 1:
			return digestView{proto: v.proto, t: v.t.middle}
		default:
			return digestView{proto: v.proto, d: v.t.right}
		}
	case v.d != nil:
		return digestView{proto: v.proto, n: v.d.children[i]}
	default:
		return digestView{proto: v.proto, n: v.n.children[i]}
	}
}

// StructuralDigest computes a blake2b-256 structural fingerprint of the
// sequence (domain-stack addition; see DESIGN.md).
func (s *PSequence) StructuralDigest() [32]byte {
	return digest.StructuralDigest(digestView{proto: s.proto, t: s.t})
}
