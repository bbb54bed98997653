package dstruct_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"dstruct.dev/dstruct"
	"github.com/stretchr/testify/require"
)

// checkValid asserts the structural invariants that every operation
// must preserve.
func checkValid[T comparable](t *testing.T, a *dstruct.Array[T]) {
	t.Helper()
	require.GreaterOrEqual(t, a.Len(), 0)
	require.LessOrEqual(t, a.Len(), a.Cap())
	require.GreaterOrEqual(t, a.Cap(), dstruct.InitCapacity)
	require.InDelta(t, float64(a.Len())/float64(a.Cap()), a.Load(), 1e-9,
		"load must equal len/cap")
}

func TestNew(t *testing.T) {
	a := dstruct.New[float64]()
	require.Equal(t, 0, a.Len())
	require.Equal(t, dstruct.InitCapacity, a.Cap())
	require.Equal(t, 0.0, a.Load())
}

func TestZeroValue(t *testing.T) {
	var a dstruct.Array[int]
	a.Add(1)
	require.Equal(t, 1, a.Len())
	require.Equal(t, dstruct.InitCapacity, a.Cap())
	require.True(t, a.Contains(1))
}

func TestAddGrows(t *testing.T) {
	a := dstruct.New[float64]()
	for i := range 10 {
		a.Add(float64(i))
	}
	require.Equal(t, 10, a.Len())
	require.Equal(t, 10, a.Cap())
	require.Equal(t, 1.0, a.Load())
	for i := range 10 {
		v, ok := a.At(i)
		require.True(t, ok)
		require.Equal(t, float64(i), v)
	}

	// The 11th append must grow before inserting.
	a.Add(42.0)
	require.Equal(t, 11, a.Len())
	require.Equal(t, 20, a.Cap())
	v, ok := a.At(10)
	require.True(t, ok)
	require.Equal(t, 42.0, v)
	checkValid(t, a)
}

func TestRemoveContracts(t *testing.T) {
	a := dstruct.New[float64]()
	for i := range 10 {
		a.Add(float64(i))
	}
	a.Add(42.0)
	require.Equal(t, 20, a.Cap())

	// Pop the tail until the load reaches the contraction point.
	// 7/20 is still above it; 6/20 hits it exactly.
	for a.Len() > 7 {
		require.Nil(t, a.Remove(a.Len()-1))
		require.Equal(t, 20, a.Cap())
	}
	require.Nil(t, a.Remove(a.Len()-1))
	require.Equal(t, 6, a.Len())
	require.Equal(t, 10, a.Cap())
	for i := range 6 {
		v, ok := a.At(i)
		require.True(t, ok)
		require.Equal(t, float64(i), v)
	}
	checkValid(t, a)
}

func TestRemoveNeverShrinksBelowFloor(t *testing.T) {
	a := dstruct.New[int]()
	a.Add(1)
	a.Add(2)
	require.Nil(t, a.Remove(0))
	require.Nil(t, a.Remove(0))
	require.Equal(t, 0, a.Len())
	require.Equal(t, dstruct.InitCapacity, a.Cap())
}

func TestInsert(t *testing.T) {
	a := dstruct.New[float64]()
	for i := range 5 {
		a.Add(float64(i))
	}

	require.Nil(t, a.Insert(3, 99.0))
	require.Equal(t, 6, a.Len())
	require.Equal(t, []float64{0, 1, 2, 99, 3, 4}, slices.Collect(a.Values()))
	checkValid(t, a)
}

func TestInsertOutOfRange(t *testing.T) {
	a := dstruct.New[int]()
	a.Add(1)

	require.ErrorIs(t, a.Insert(-1, 2), dstruct.ErrIndexOutOfRange)
	require.ErrorIs(t, a.Insert(2, 2), dstruct.ErrIndexOutOfRange)
	require.Equal(t, []int{1}, slices.Collect(a.Values()))

	// Len itself is a valid insertion index.
	require.Nil(t, a.Insert(1, 2))
	require.Equal(t, []int{1, 2}, slices.Collect(a.Values()))
}

func TestRemoveOutOfRange(t *testing.T) {
	a := dstruct.New[int]()
	a.Add(1)

	require.ErrorIs(t, a.Remove(-1), dstruct.ErrIndexOutOfRange)
	require.ErrorIs(t, a.Remove(1), dstruct.ErrIndexOutOfRange)
	require.Equal(t, 1, a.Len())
}

func TestRemoveValue(t *testing.T) {
	a := dstruct.New[float64]()
	for i := range 5 {
		a.Add(float64(i))
	}

	require.True(t, a.RemoveValue(3.0))
	require.Equal(t, []float64{0, 1, 2, 4}, slices.Collect(a.Values()))
	require.Equal(t, 4, a.Len())

	require.False(t, a.RemoveValue(99.0))
	require.Equal(t, []float64{0, 1, 2, 4}, slices.Collect(a.Values()))
}

func TestRemoveValueFirstMatch(t *testing.T) {
	a := dstruct.New[int]()
	for _, v := range []int{7, 3, 7, 5} {
		a.Add(v)
	}
	require.True(t, a.RemoveValue(7))
	require.Equal(t, []int{3, 7, 5}, slices.Collect(a.Values()))
}

func TestAddRemoveRoundTrip(t *testing.T) {
	a := dstruct.New[int]()
	for i := range 5 {
		a.Add(i)
	}
	want := slices.Collect(a.Values())

	a.Add(77)
	require.True(t, a.RemoveValue(77))
	require.Equal(t, want, slices.Collect(a.Values()))
}

func TestClear(t *testing.T) {
	a := dstruct.New[int]()
	for i := range 25 {
		a.Add(i)
	}
	require.Greater(t, a.Cap(), dstruct.InitCapacity)

	a.Clear()
	require.Equal(t, 0, a.Len())
	require.Equal(t, dstruct.InitCapacity, a.Cap())
	require.Equal(t, 0.0, a.Load())

	// Clearing again changes nothing observable.
	a.Clear()
	require.Equal(t, 0, a.Len())
	require.Equal(t, dstruct.InitCapacity, a.Cap())
}

func TestSet(t *testing.T) {
	a := dstruct.New[string]()
	a.Add("a")
	a.Add("b")

	require.True(t, a.Set(1, "c"))
	require.Equal(t, []string{"a", "c"}, slices.Collect(a.Values()))
	require.False(t, a.Set(2, "d"))
}

func TestIterators(t *testing.T) {
	a := dstruct.New[int]()
	for i := range 4 {
		a.Add(i * 10)
	}

	var got []int
	for i, v := range a.All() {
		require.Equal(t, i*10, v)
		got = append(got, v)
	}
	require.Equal(t, []int{0, 10, 20, 30}, got)

	// An early break must stop the iteration cleanly.
	n := 0
	for range a.Values() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestRandomOps(t *testing.T) {
	a := dstruct.New[int]()
	var mirror []int
	rng := rand.New(rand.NewPCG(1, 2))

	for range 2000 {
		switch op := rng.IntN(4); {
		case op == 0 && len(mirror) > 0:
			i := rng.IntN(len(mirror))
			require.Nil(t, a.Remove(i))
			mirror = slices.Delete(mirror, i, i+1)
		case op == 1 && len(mirror) > 0:
			v := mirror[rng.IntN(len(mirror))]
			require.True(t, a.RemoveValue(v))
			i := slices.Index(mirror, v)
			mirror = slices.Delete(mirror, i, i+1)
		case op == 2:
			i := rng.IntN(len(mirror) + 1)
			v := rng.IntN(1000)
			require.Nil(t, a.Insert(i, v))
			mirror = slices.Insert(mirror, i, v)
		default:
			v := rng.IntN(1000)
			a.Add(v)
			mirror = append(mirror, v)
		}

		checkValid(t, a)
		require.Equal(t, len(mirror), a.Len())
		if len(mirror) > 0 {
			i := rng.IntN(len(mirror))
			v, ok := a.At(i)
			require.True(t, ok)
			require.Equal(t, mirror[i], v)
			require.True(t, a.Contains(v))
		}
	}
	require.True(t, slices.Equal(mirror, slices.Collect(a.Values())))
}

func TestLoadTracksMutations(t *testing.T) {
	a := dstruct.New[int]()
	for i := range 30 {
		a.Add(i)
		if got, want := a.Load(), float64(a.Len())/float64(a.Cap()); math.Abs(got-want) > 1e-12 {
			t.Fatalf("load = %v, want %v", got, want)
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	a := dstruct.New[int]()
	for i := range b.N {
		a.Add(i)
	}
}
