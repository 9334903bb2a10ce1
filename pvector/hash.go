package pvector

// Hash computes a tuple-compatible hash (§4.2 hash): follows the same mix
// pattern used for hashing an element tuple, so that a PVector and a
// same-content host tuple/list hash identically when the host's default
// element protocol delegates straight to its native hash.
func (v *PVector) Hash() int {
	x := 0x456789
	mult := 1000003
	it := v.Iterator()
	i := 0
	for it.Next() {
		y := v.proto.Hash(it.Value())
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

// Repr renders the vector using the host's tuple-repr convention (§4.2
// repr): "pvector([" + comma-joined element reprs + "])".
func (v *PVector) Repr() string {
	s := "pvector(["
	it := v.Iterator()
	first := true
	for it.Next() {
		if !first {
			s += ", "
		}
		first = false
		s += v.proto.Repr(it.Value())
	}
	return s + "])"
}
