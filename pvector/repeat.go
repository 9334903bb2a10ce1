package pvector

import (
	"math"

	"github.com/arriqaaq/pseq/perrors"
)

// Repeat returns v's elements repeated n times, mirroring pvectorcmodule.c's
// PVector_repeat (the host's `v * n`), guarded against overflow of
// count * n (§6.2: "arithmetic overflow of count * n in repeat → memory
// error").
func (v *PVector) Repeat(n int) (*PVector, error) {
	if n <= 0 {
		return empty(v.proto), nil
	}
	if v.count != 0 && n > math.MaxInt/v.count {
		return nil, perrors.MemoryError("pvector.Repeat")
	}
	out := empty(v.proto)
	for i := 0; i < n; i++ {
		it := v.Iterator()
		for it.Next() {
			out = out.Append(it.Value())
		}
	}
	return out, nil
}
