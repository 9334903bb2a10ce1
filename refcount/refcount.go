// Package refcount implements the reference-counting discipline consumed by
// both structural cores (§4.1): retain/release semantics for nodes that are
// otherwise treated as immutable once shared.
//
// A node's payload is frozen once constructed; only its Counter is ever
// mutated, and only by Retain/Release. This is deliberately manual rather
// than left to Go's garbage collector: the whole point of this module is to
// model the structural-sharing discipline the spec describes, the same way
// the teacher's trie nodes are reference-counted independently of whatever
// storage backend eventually reclaims them.
package refcount

// Counter is an intrusive reference count, embedded by value in every node
// type so construction needs no extra allocation.
type Counter int32

// saturated marks a node (the shared empty singleton) whose count never
// changes: retain/release on it are no-ops, matching §3.2's "refcount
// treated as saturating" allowance.
const saturated Counter = 1<<31 - 1

// New returns the initial count for a freshly allocated, singly-owned node.
func New() Counter { return 1 }

// Saturated returns a count that Retain/Release never change.
func Saturated() Counter { return saturated }

// Retain increments the count, recording one more owning reference.
func (c *Counter) Retain() {
	if *c == saturated {
		return
	}
	*c++
}

// Release decrements the count and reports whether it has just reached
// zero, meaning the caller must recursively release the node's children (or
// its element, for a leaf) and may then let the node go.
func (c *Counter) Release() bool {
	if *c == saturated {
		return false
	}
	if *c <= 0 {
		panic("refcount: release of a node with a non-positive count")
	}
	*c--
	return *c == 0
}

// Shared reports whether more than one owner holds a reference, i.e.
// whether the node must be copied rather than mutated in place.
func (c Counter) Shared() bool {
	return c > 1 && c != saturated
}

// Stats are debug-only allocation counters, mirroring the teacher's
// debug-build node counters (§9 "Debug counters"). They are not
// load-bearing for correctness and are safe to ignore in production use.
type Stats struct {
	Allocated int64
	Freed     int64
}

var globalStats Stats

// Allocated reports the number of nodes allocated across both cores since
// process start, for test and benchmark instrumentation only.
func Allocated() int64 { return globalStats.Allocated }

// Freed reports the number of nodes whose count reached zero.
func Freed() int64 { return globalStats.Freed }

// TrackAlloc and TrackFree are called by node constructors/releasers in
// pvector and pseq. They are cheap counter bumps, not synchronized: per §5
// these structures are single-threaded, so no atomics are needed.
func TrackAlloc() { globalStats.Allocated++ }
func TrackFree()  { globalStats.Freed++ }
