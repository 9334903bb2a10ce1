package pvector

import (
	"math"
	"testing"

	"github.com/arriqaaq/pseq/elem"
	"github.com/stretchr/testify/require"
)

func build(n int) *PVector {
	v := empty(elem.Default)
	for i := 0; i < n; i++ {
		v = v.Append(i)
	}
	return v
}

// TestBuildThirtyThree is scenario 1 of §8: 33 successive appends from
// empty.
func TestBuildThirtyThree(t *testing.T) {
	v := build(33)
	require.Equal(t, 33, v.Len())
	x0, err := v.Index(0)
	require.NoError(t, err)
	require.Equal(t, 0, x0)
	x32, err := v.Index(32)
	require.NoError(t, err)
	require.Equal(t, 32, x32)
	require.EqualValues(t, 5, v.shift)
	require.Equal(t, 1, v.tailSize())
}

// TestSetDoesNotMutateOriginal is scenario 2 of §8.
func TestSetDoesNotMutateOriginal(t *testing.T) {
	v := build(33)
	w, err := v.Set(10, "x")
	require.NoError(t, err)

	orig, err := v.Index(10)
	require.NoError(t, err)
	require.Equal(t, 10, orig)

	updated, err := w.Index(10)
	require.NoError(t, err)
	require.Equal(t, "x", updated)

	for j := 0; j < v.Len(); j++ {
		if j == 10 {
			continue
		}
		a, err := v.Index(j)
		require.NoError(t, err)
		b, err := w.Index(j)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestNegativeIndex(t *testing.T) {
	v := build(10)
	x, err := v.Index(-1)
	require.NoError(t, err)
	require.Equal(t, 9, x)
}

func TestIndexOutOfRange(t *testing.T) {
	v := build(3)
	_, err := v.Index(3)
	require.Error(t, err)
	_, err = v.Index(-4)
	require.Error(t, err)
}

func TestAppendGrowsAcrossManyBlocks(t *testing.T) {
	const n = 5000
	v := build(n)
	require.Equal(t, n, v.Len())
	for _, i := range []int{0, 1, 31, 32, 33, 1023, 1024, n - 1} {
		x, err := v.Index(i)
		require.NoError(t, err)
		require.Equal(t, i, x)
	}
}

func TestIteratorMatchesIndex(t *testing.T) {
	v := build(200)
	it := v.Iterator()
	i := 0
	for it.Next() {
		want, err := v.Index(i)
		require.NoError(t, err)
		require.Equal(t, want, it.Value())
		i++
	}
	require.Equal(t, v.Len(), i)
}

func TestSliceBasic(t *testing.T) {
	v := build(10)
	s, err := v.Slice(2, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())
	x, err := s.Index(0)
	require.NoError(t, err)
	require.Equal(t, 2, x)
}

func TestHashEqualForEqualContent(t *testing.T) {
	a := build(20)
	b := build(20)
	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, eq)
	require.Equal(t, a.Hash(), b.Hash())
}

func TestRepeatOverflowGuard(t *testing.T) {
	v := build(1)
	_, err := v.Repeat(3)
	require.NoError(t, err)

	_, err = build(2).Repeat(math.MaxInt/2 + 1)
	require.Error(t, err)
}

func TestOriginalUnaffectedAfterManyOps(t *testing.T) {
	v := build(40)
	w := v
	for i := 0; i < 40; i++ {
		var err error
		w, err = w.Set(i, i*2)
		require.NoError(t, err)
	}
	for i := 0; i < 40; i++ {
		x, err := v.Index(i)
		require.NoError(t, err)
		require.Equal(t, i, x)
	}
}

func TestReverseIterator(t *testing.T) {
	v := build(200)
	it := v.ReverseIterator()
	i := 199
	for it.Next() {
		require.Equal(t, i, it.Value())
		i--
	}
	require.Equal(t, -1, i)
}

func TestReverseIteratorAcrossMultipleBlocks(t *testing.T) {
	v := build(5000)
	it := v.ReverseIterator()
	i := 4999
	for it.Next() {
		want, err := v.Index(i)
		require.NoError(t, err)
		require.Equal(t, want, it.Value())
		i--
	}
	require.Equal(t, -1, i)
}

func TestToTreeFromTreeRoundTrip(t *testing.T) {
	v := build(70)
	tt := v.ToTree()
	got, err := FromTree(elem.Default, tt)
	require.NoError(t, err)
	require.Equal(t, v.ToSlice(), got.ToSlice())
}

func TestReduceRebuild(t *testing.T) {
	v := build(15)
	got := Rebuild(v.Reduce())
	require.Equal(t, v.ToSlice(), got.ToSlice())
}

func TestTransform(t *testing.T) {
	v := build(5)
	got, err := v.Transform(TransformStep{Path: []int{2}, Action: "x"})
	require.NoError(t, err)
	x, err := got.Index(2)
	require.NoError(t, err)
	require.Equal(t, "x", x)
	orig, err := v.Index(2)
	require.NoError(t, err)
	require.Equal(t, 2, orig)

	doubled, err := v.Transform(TransformStep{
		Path:   []int{1},
		Action: func(e elem.Element) elem.Element { return e.(int) * 2 },
	})
	require.NoError(t, err)
	d, err := doubled.Index(1)
	require.NoError(t, err)
	require.Equal(t, 2, d)
}
