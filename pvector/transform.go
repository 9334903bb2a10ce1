package pvector

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
)

// TransformIndex and TransformSet let a PVector act as one level of a nested
// structure for elem.ApplyPath, satisfying elem.Nested.
func (v *PVector) TransformIndex(i int) (elem.Element, error) { return v.Index(i) }

func (v *PVector) TransformSet(i int, x elem.Element) (elem.Element, error) { return v.Set(i, x) }

// TransformStep is one (path, value-or-func) pair of the transform DSL
// (§6.3 transform; SPEC_FULL.md's SUPPLEMENTED FEATURES describes this as a
// thin façade over repeated Set calls resolved through nested
// PVector/PSequence elements).
type TransformStep struct {
	Path   []int
	Action interface{} // elem.Element, or func(elem.Element) elem.Element
}

// Transform applies each step in turn against v, threading the result of
// one step into the next (§6.3 transform). A step's Action is either an
// elem.Element (direct replacement) or a func(elem.Element) elem.Element
// (applied to the value currently at Path).
func (v *PVector) Transform(steps ...TransformStep) (*PVector, error) {
	result := v
	for _, step := range steps {
		next, err := elem.ApplyPath(result, step.Path, step.Action)
		if err != nil {
			return nil, err
		}
		nv, ok := next.(*PVector)
		perrors.Assertf(ok, "pvector: Transform: path resolved to %T, not *PVector", next)
		result = nv
	}
	return result, nil
}
