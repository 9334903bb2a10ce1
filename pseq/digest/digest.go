// Package digest computes a structural content fingerprint for a PVector or
// PSequence: a single blake2b-256 hash over a pre-order traversal of node
// boundaries (size, arity) and leaf content hashes.
//
// This repurposes the "combine children commitments into one parent
// commitment" shape of the teacher's trie_blake2b CommitmentModel
// (CalcNodeCommitment) away from a cryptographic Merkle commitment and
// toward a structural equality/dedup fingerprint: two sequences with the
// same digest have the same tree shape and the same leaf hashes (up to hash
// collisions), and once computed, digests compare in O(1). Because the
// digest covers the shape, equal contents built by different operation
// sequences can give different digests.
package digest

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Node is the minimal structural view StructuralDigest needs. PVector and
// PSequence each adapt their own internal representation (trie node / tail,
// finger-tree node / digit / tree) to this interface rather than exposing
// it.
type Node interface {
	// Size is the subtree's element count.
	Size() int
	// Arity is the number of children this node exposes via Child, or 0
	// for a leaf.
	Arity() int
	// LeafValue returns the Element Protocol hash of this node's content
	// and true, if this node is a leaf; otherwise ok is false.
	LeafValue() (hashCode int, ok bool)
	// Child returns the i'th child, 0 <= i < Arity().
	Child(i int) Node
}

// StructuralDigest computes the fingerprint of root.
func StructuralDigest(root Node) [32]byte {
	h, _ := blake2b.New256(nil)
	writeNode(h, root)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func writeNode(h hash.Hash, n Node) {
	if n == nil {
		h.Write([]byte{0x00})
		return
	}
	if hc, ok := n.LeafValue(); ok {
		var buf [9]byte
		buf[0] = 0x01
		binary.BigEndian.PutUint64(buf[1:], uint64(hc))
		h.Write(buf[:])
		return
	}
	var buf [9]byte
	buf[0] = 0x02
	binary.BigEndian.PutUint64(buf[1:], uint64(n.Size()))
	h.Write(buf[:])
	arity := n.Arity()
	var arityBuf [4]byte
	binary.BigEndian.PutUint32(arityBuf[:], uint32(arity))
	h.Write(arityBuf[:])
	for i := 0; i < arity; i++ {
		writeNode(h, n.Child(i))
	}
}
