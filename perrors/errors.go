// Package perrors defines the error-kind taxonomy of §7: sentinels wrapped
// with call-site context via golang.org/x/xerrors, the same way the
// teacher's trie/errors.go wraps a sentinel with xerrors.New and callers
// add context with xerrors.Errorf's %w verb.
package perrors

import "golang.org/x/xerrors"

var (
	// ErrIndexOutOfRange is returned for any index outside [0, len) (after
	// negative-index normalization), or a slice outside the host's slice
	// protocol bounds.
	ErrIndexOutOfRange = xerrors.New("index out of range")
	// ErrTypeMismatch is returned when a subscript is neither an integer
	// nor a slice.
	ErrTypeMismatch = xerrors.New("unsupported subscript type")
	// ErrValueNotFound is returned by Remove/IndexOf when the value is absent.
	ErrValueNotFound = xerrors.New("value not found")
	// ErrIterationFailure wraps a failure propagated from an element
	// iterator supplied by the host.
	ErrIterationFailure = xerrors.New("iteration failed")
	// ErrValueMismatch is returned when a slice-assignment's replacement
	// length does not match the selected span's length.
	ErrValueMismatch = xerrors.New("replacement length does not match selection")
	// ErrMemoryExhausted is returned when an operation (e.g. Repeat) would
	// overflow the element count.
	ErrMemoryExhausted = xerrors.New("operation would exceed addressable element count")
	// ErrAssertionFailure marks an invariant violation that should never
	// occur on a production path; seeing it means the structural-sharing
	// engine itself has a bug.
	ErrAssertionFailure = xerrors.New("internal invariant violation")
)

// IndexError builds an ErrIndexOutOfRange with the failing index and the
// collection length it was checked against.
func IndexError(i, length int) error {
	return xerrors.Errorf("index %d out of range for length %d: %w", i, length, ErrIndexOutOfRange)
}

// ValueMismatchError builds an ErrValueMismatch describing the selected
// span length versus the replacement length.
func ValueMismatchError(selected, replacement int) error {
	return xerrors.Errorf("selection of length %d cannot be assigned %d values: %w", selected, replacement, ErrValueMismatch)
}

// NotFoundError builds an ErrValueNotFound for the given operation name.
func NotFoundError(op string) error {
	return xerrors.Errorf("%s: value not found: %w", op, ErrValueNotFound)
}

// MemoryError builds an ErrMemoryExhausted for the given operation name.
func MemoryError(op string) error {
	return xerrors.Errorf("%s: would exceed addressable element count: %w", op, ErrMemoryExhausted)
}

// StepError builds an ErrTypeMismatch for a slice step of zero, which the
// slice protocol never allows.
func StepError() error {
	return xerrors.Errorf("slice step must not be zero: %w", ErrTypeMismatch)
}

// UnsortedIndicesError builds an ErrIndexOutOfRange for a multi-index view()
// call whose indices were not given in strictly ascending order (§6.3 view).
func UnsortedIndicesError(i, prev int) error {
	return xerrors.Errorf("view indices must be strictly ascending: %d did not follow %d: %w", i, prev, ErrIndexOutOfRange)
}

// Assertf panics with an ErrAssertionFailure-wrapped message if cond is
// false. Mirrors the teacher's util.go Assert helper, used throughout the
// immutable/mutable trie packages for invariants that must never fail on a
// correct path.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(xerrors.Errorf(format+": %w", append(args, ErrAssertionFailure)...))
	}
}
