package pseq

import (
	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
)

// TransformIndex and TransformSet let a PSequence act as one level of a
// nested structure for elem.ApplyPath, satisfying elem.Nested.
func (s *PSequence) TransformIndex(i int) (elem.Element, error) { return s.Index(i) }

func (s *PSequence) TransformSet(i int, x elem.Element) (elem.Element, error) { return s.Set(i, x) }

// TransformStep is pvector.TransformStep's counterpart for PSequence (§6.3
// transform).
type TransformStep struct {
	Path   []int
	Action interface{} // elem.Element, or func(elem.Element) elem.Element
}

// Transform applies each step in turn against s, threading the result of one
// step into the next, the same façade pvector.PVector.Transform provides.
func (s *PSequence) Transform(steps ...TransformStep) (*PSequence, error) {
	result := s
	for _, step := range steps {
		next, err := elem.ApplyPath(result, step.Path, step.Action)
		if err != nil {
			return nil, err
		}
		ns, ok := next.(*PSequence)
		perrors.Assertf(ok, "pseq: Transform: path resolved to %T, not *PSequence", next)
		result = ns
	}
	return result, nil
}
