package pseq

import (
	"testing"

	"github.com/arriqaaq/pseq/elem"
	"github.com/stretchr/testify/require"
)

func build(n int) *PSequence {
	items := make([]elem.Element, n)
	for i := range items {
		items[i] = i
	}
	return New(elem.Default, items...)
}

func toInts(t *testing.T, s *PSequence) []int {
	t.Helper()
	raw := s.ToSlice()
	out := make([]int, len(raw))
	for i, x := range raw {
		out[i] = x.(int)
	}
	return out
}

// TestViewLeftRight is scenario 3 of §8: fromIterable([a..e]), viewLeft,
// then viewRight of the rest.
func TestViewLeftRight(t *testing.T) {
	s := New(elem.Default, "a", "b", "c", "d", "e")
	head, rest, err := s.ViewLeft()
	require.NoError(t, err)
	require.Equal(t, "a", head)
	require.Equal(t, []elem.Element{"b", "c", "d", "e"}, rest.ToSlice())

	last, init, err := rest.ViewRight()
	require.NoError(t, err)
	require.Equal(t, "e", last)
	require.Equal(t, []elem.Element{"b", "c", "d"}, init.ToSlice())
}

// TestSplitAt is scenario 4 of §8.
func TestSplitAt(t *testing.T) {
	s := build(100)
	left, right, err := s.SplitAt(37)
	require.NoError(t, err)
	require.Equal(t, 37, left.Len())
	require.Equal(t, 63, right.Len())
	for i := 0; i < 37; i++ {
		require.Equal(t, i, toInts(t, left)[i])
	}
	for i := 0; i < 63; i++ {
		require.Equal(t, 37+i, toInts(t, right)[i])
	}
}

// TestConcatMatchesFromIterable is scenario 5 of §8.
func TestConcatMatchesFromIterable(t *testing.T) {
	a := build(50)
	full := build(100)
	items := make([]elem.Element, 50)
	for i := range items {
		items[i] = 50 + i
	}
	b := New(elem.Default, items...)
	got := a.Extend(b)
	require.Equal(t, full.Len(), got.Len())
	require.Equal(t, full.ToSlice(), got.ToSlice())
	require.Equal(t, full.Hash(), got.Hash())
}

// TestSetSliceStepTwo is scenario 6 of §8.
func TestSetSliceStepTwo(t *testing.T) {
	s := build(10)
	got, err := s.SetSlice(1, 9, 2, []elem.Element{"A", "B", "C", "D"})
	require.NoError(t, err)
	require.Equal(t,
		[]elem.Element{0, "A", 2, "B", 4, "C", 6, "D", 8, 9},
		got.ToSlice(),
	)

	_, err = s.SetSlice(1, 9, 2, []elem.Element{"A", "B", "C"})
	require.Error(t, err)
	// the source sequence is unchanged by the failed assignment
	require.Equal(t, toInts(t, s), toInts(t, build(10)))
}

func TestInsertAndDelete(t *testing.T) {
	s := build(5)
	withX, err := s.Insert(2, "x")
	require.NoError(t, err)
	require.Equal(t, []elem.Element{0, 1, "x", 2, 3, 4}, withX.ToSlice())

	back, err := withX.Delete(2)
	require.NoError(t, err)
	require.Equal(t, toInts(t, s), toInts(t, back))
}

func TestAppendLeftRight(t *testing.T) {
	s := Empty(elem.Default)
	for i := 0; i < 20; i++ {
		s = s.AppendRight(i)
	}
	for i := 0; i < 20; i++ {
		s = s.AppendLeft(-i)
	}
	require.Equal(t, 40, s.Len())
	first, err := s.Index(0)
	require.NoError(t, err)
	require.Equal(t, -19, first)
	last, err := s.Index(39)
	require.NoError(t, err)
	require.Equal(t, 19, last)
}

func TestReverseIsInvolution(t *testing.T) {
	s := build(37)
	r := s.Reverse().Reverse()
	require.Equal(t, s.ToSlice(), r.ToSlice())
}

func TestMSetAppliesAllUpdatesInOrder(t *testing.T) {
	s := build(10)
	got, err := s.MSet(map[int]elem.Element{1: "a", 4: "b", 7: "c"})
	require.NoError(t, err)
	require.Equal(t,
		[]elem.Element{0, "a", 2, 3, "b", 5, 6, "c", 8, 9},
		got.ToSlice(),
	)
}

func TestIndexCountContains(t *testing.T) {
	s := New(elem.Default, "a", "b", "a", "c", "a")
	idx, err := s.IndexOf("a")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	cnt, err := s.Count("a")
	require.NoError(t, err)
	require.Equal(t, 3, cnt)

	ok, err := s.Contains("z")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestChunksOf(t *testing.T) {
	s := build(10)
	chunks := s.ChunksOf(3)
	require.Len(t, chunks, 4)
	require.Equal(t, []elem.Element{0, 1, 2}, chunks[0].ToSlice())
	require.Equal(t, []elem.Element{9}, chunks[3].ToSlice())
}

func TestRemoveMissingValueErrors(t *testing.T) {
	s := build(5)
	_, err := s.Remove("not-there")
	require.Error(t, err)
}

func TestOriginalUnaffectedAfterManyOps(t *testing.T) {
	s := build(40)
	w := s
	for i := 0; i < 40; i++ {
		var err error
		w, err = w.Set(i, i*2)
		require.NoError(t, err)
	}
	require.Equal(t, toInts(t, s), toInts(t, build(40)))
}

func TestEvolver(t *testing.T) {
	e := build(3).Evolver()
	e.AppendRight(3)
	e.AppendLeft(-1)
	require.NoError(t, e.Set(0, "zero"))
	p := e.Persistent()
	require.Equal(t, []elem.Element{"zero", 0, 1, 2, 3}, p.ToSlice())
}

func TestHashEqualForEqualContent(t *testing.T) {
	a, b := build(20), build(20)
	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, eq)
	require.Equal(t, a.Hash(), b.Hash())
}

func TestStructuralDigestMatchesForEqualTrees(t *testing.T) {
	a, b := build(64), build(64)
	require.Equal(t, a.StructuralDigest(), b.StructuralDigest())
	c := build(63)
	require.NotEqual(t, a.StructuralDigest(), c.StructuralDigest())
}

func TestRepeatOverflowGuard(t *testing.T) {
	s := build(1)
	_, err := s.Repeat(3)
	require.NoError(t, err)

	_, err = build(2).Repeat(math.MaxInt/2 + 1)
	require.Error(t, err)
}

func TestView(t *testing.T) {
	s := build(10)
	left, elt, right, err := s.View(4)
	require.NoError(t, err)
	require.Equal(t, 4, elt)
	require.Equal(t, []elem.Element{0, 1, 2, 3}, left.ToSlice())
	require.Equal(t, []elem.Element{5, 6, 7, 8, 9}, right.ToSlice())
	// the source sequence is unaffected
	require.Equal(t, toInts(t, build(10)), toInts(t, s))
}

func TestViewMulti(t *testing.T) {
	s := build(10)
	lefts, elts, rest, err := s.ViewMulti(2, 5, 7)
	require.NoError(t, err)
	require.Equal(t, []elem.Element{2, 5, 7}, elts)
	require.Equal(t, []elem.Element{0, 1}, lefts[0].ToSlice())
	require.Equal(t, []elem.Element{3, 4}, lefts[1].ToSlice())
	require.Equal(t, []elem.Element{6}, lefts[2].ToSlice())
	require.Equal(t, []elem.Element{8, 9}, rest.ToSlice())

	_, _, _, err = s.ViewMulti(5, 2)
	require.Error(t, err)
}

func TestReverseIterator(t *testing.T) {
	s := build(37)
	it := s.ReverseIterator()
	i := 36
	for it.Next() {
		require.Equal(t, i, it.Value())
		i--
	}
	require.Equal(t, -1, i)
}

func TestToTreeFromTreeRoundTrip(t *testing.T) {
	s := build(50)
	tt := s.ToTree()
	got, err := FromTree(elem.Default, tt)
	require.NoError(t, err)
	require.Equal(t, s.ToSlice(), got.ToSlice())
	require.Equal(t, s.Hash(), got.Hash())
}

func TestReduceRebuild(t *testing.T) {
	s := build(12)
	got := Rebuild(s.Reduce())
	require.Equal(t, s.ToSlice(), got.ToSlice())
}

func TestTransform(t *testing.T) {
	s := build(5)
	got, err := s.Transform(TransformStep{Path: []int{2}, Action: "x"})
	require.NoError(t, err)
	require.Equal(t, []elem.Element{0, 1, "x", 3, 4}, got.ToSlice())
	require.Equal(t, toInts(t, build(5)), toInts(t, s))

	doubled, err := s.Transform(TransformStep{
		Path:   []int{1},
		Action: func(x elem.Element) elem.Element { return x.(int) * 2 },
	})
	require.NoError(t, err)
	require.Equal(t, []elem.Element{0, 2, 2, 3, 4}, doubled.ToSlice())
}

func TestTransformNested(t *testing.T) {
	inner := build(3)
	outer := New(elem.Default, "a", inner, "c")
	got, err := outer.Transform(TransformStep{Path: []int{1, 0}, Action: 100})
	require.NoError(t, err)
	nested, err := got.Index(1)
	require.NoError(t, err)
	require.Equal(t, []elem.Element{100, 1, 2}, nested.(*PSequence).ToSlice())
}
