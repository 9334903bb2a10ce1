package pvector

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
)

func errEmptyPop() error { return perrors.IndexError(-1, 0) }

// Evolver is a thin mutable handle over a PVector (§4.5): each method
// delegates to the corresponding persistent operation and then replaces the
// held reference, giving callers an imperative feel over the immutable
// core without exposing the tree internals.
type Evolver struct {
	cur *PVector
}

// Evolver returns a new Evolver over v.
func (v *PVector) Evolver() *Evolver {
	return &Evolver{cur: v}
}

// Persistent returns the current persistent value.
func (e *Evolver) Persistent() *PVector { return e.cur }

// Copy returns an independent evolver sharing the same current value.
func (e *Evolver) Copy() *Evolver { return &Evolver{cur: e.cur} }

// Append appends x in place.
func (e *Evolver) Append(x elem.Element) { e.cur = e.cur.Append(x) }

// Set replaces index i with x in place.
func (e *Evolver) Set(i int, x elem.Element) error {
	v, err := e.cur.Set(i, x)
	if err != nil {
		return err
	}
	e.cur = v
	return nil
}

// Index returns the element at i.
func (e *Evolver) Index(i int) (elem.Element, error) { return e.cur.Index(i) }

// Len returns the current length.
func (e *Evolver) Len() int { return e.cur.Len() }

// Pop removes and returns the last element, updating in place.
func (e *Evolver) Pop() (elem.Element, error) {
	n := e.cur.Len()
	if n == 0 {
		return nil, errEmptyPop()
	}
	x, err := e.cur.Index(n - 1)
	if err != nil {
		return nil, err
	}
	v, err := e.cur.Slice(0, n-1, 1)
	if err != nil {
		return nil, err
	}
	e.cur = v
	return x, nil
}
