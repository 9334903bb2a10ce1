package pseq

import "github.com/arriqaaq/pseq/elem"

// indexOfElement returns the position of the first element equal to x, or
// -1 (§4.3/§6.3 index/count/contains). t is borrowed.
func indexOfElement(proto elem.Protocol, t *tree, x elem.Element) (int, error) {
	it := newIterator(proto, t)
	for i := 0; it.Next(); i++ {
		eq, err := proto.Equal(it.Value(), x)
		if err != nil {
			return -1, err
		}
		if eq {
			return i, nil
		}
	}
	return -1, nil
}

func countElement(proto elem.Protocol, t *tree, x elem.Element) (int, error) {
	it := newIterator(proto, t)
	n := 0
	for it.Next() {
		eq, err := proto.Equal(it.Value(), x)
		if err != nil {
			return 0, err
		}
		if eq {
			n++
		}
	}
	return n, nil
}

// chunksOf splits t into consecutive trees of at most size k (§6.3
// chunksof), via repeated takeFirst/dropFirst.
func chunksOf(proto elem.Protocol, t *tree, k int) []*tree {
	if k <= 0 {
		return nil
	}
	var out []*tree
	rest := retainTree(t)
	for rest.size > 0 {
		chunk := takeFirst(proto, rest, k)
		next := dropFirst(proto, rest, k)
		releaseTree(rest, proto)
		out = append(out, chunk)
		rest = next
	}
	releaseTree(rest, proto)
	return out
}
