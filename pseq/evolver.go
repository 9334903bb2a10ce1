package pseq

import "github.com/arriqaaq/pseq/elem"

// Evolver is a thin mutable handle over a PSequence (§4.5), mirroring
// pvector.Evolver: each method delegates to the corresponding persistent
// operation and replaces the held reference.
type Evolver struct {
	cur *PSequence
}

// Evolver returns a new Evolver over s.
func (s *PSequence) Evolver() *Evolver { return &Evolver{cur: s} }

// Persistent returns the current persistent value.
func (e *Evolver) Persistent() *PSequence { return e.cur }

// Copy returns an independent evolver sharing the same current value.
func (e *Evolver) Copy() *Evolver { return &Evolver{cur: e.cur} }

// AppendRight appends x in place.
func (e *Evolver) AppendRight(x elem.Element) { e.cur = e.cur.AppendRight(x) }

// AppendLeft prepends x in place.
func (e *Evolver) AppendLeft(x elem.Element) { e.cur = e.cur.AppendLeft(x) }

// Set replaces index i with x in place.
func (e *Evolver) Set(i int, x elem.Element) error {
	v, err := e.cur.Set(i, x)
	if err != nil {
		return err
	}
	e.cur = v
	return nil
}

// Insert inserts x at position i in place.
func (e *Evolver) Insert(i int, x elem.Element) error {
	v, err := e.cur.Insert(i, x)
	if err != nil {
		return err
	}
	e.cur = v
	return nil
}

// Delete removes the element at i in place.
func (e *Evolver) Delete(i int) error {
	v, err := e.cur.Delete(i)
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

// PopLeft removes and returns the first element, updating in place.
func (e *Evolver) PopLeft() (elem.Element, error) {
	x, rest, err := e.cur.ViewLeft()
	if err != nil {
		return nil, err
	}
	e.cur = rest
	return x, nil
}

// PopRight removes and returns the last element, updating in place.
func (e *Evolver) PopRight() (elem.Element, error) {
	x, rest, err := e.cur.ViewRight()
	if err != nil {
		return nil, err
	}
	e.cur = rest
	return x, nil
}
