package pseq

import (
	"fmt"
	"strings"

	"github.com/arriqaaq/pseq/elem"
)

// hashTree implements §4.2's tuple-hash mixing formula (shared with pvector,
// §6.4): this keeps PVector and PSequence interchangeable as dict keys /
// set members whenever their contents match.
func hashTree(proto elem.Protocol, t *tree) int {
	x := 0x456789
	mult := 1000003
	it := newIterator(proto, t)
	i := 0
	for it.Next() {
		y := proto.Hash(it.Value())
		x = (x ^ y) * mult
		mult += 82520 + 2*i
		i++
	}
	x += 97531
	if x == -1 {
		x = -2
	}
	return x
}

func reprTree(proto elem.Protocol, t *tree) string {
	var b strings.Builder
	b.WriteString("pseq([")
	it := newIterator(proto, t)
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, proto.Repr(it.Value()))
	}
	b.WriteString("])")
	return b.String()
}
