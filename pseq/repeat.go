package pseq

import (
	"math"

	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/perrors"
)

// repeatTree returns t repeated n times, guarding against size overflow the
// way pvector.Repeat does (§6.3 transform/"Supplemented Features": repeat).
func repeatTree(proto elem.Protocol, t *tree, n int) (*tree, error) {
	if n <= 0 || t.size == 0 {
		return emptyTree, nil
	}
	if n > math.MaxInt/t.size {
		return nil, perrors.MemoryError("pseq.Repeat")
	}
	result := emptyTree
	for i := 0; i < n; i++ {
		next := concat(proto, result, t)
		releaseTree(result, proto)
		result = next
	}
	return result, nil
}
