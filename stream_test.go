package raz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimCons(t *testing.T) {
	s := &Cons[string]{Elem: "a", Level: 3, Rest: EmptyTrees[string]()}
	elem, lev, rest, ok := Trim[string](L, s)
	require.True(t, ok)
	require.Equal(t, "a", elem)
	require.Equal(t, Level(3), lev)
	require.IsType(t, &Trees[string]{}, rest)
}

func TestTrimEmptyTreesIsNotAnError(t *testing.T) {
	_, _, rest, ok := Trim[int](L, EmptyTrees[int]())
	require.False(t, ok)
	require.IsType(t, &Trees[int]{}, rest)
}

// trim splits a non-level-carrier Bin into [L; carrier; R] biased by
// direction.
func TestTrimSplitsBinByDirection(t *testing.T) {
	inner := NewBin[string](7, NewLeaf("left"), NewLeaf("right"))
	frags := &Trees[string]{Frags: cons[string](inner, nil)}

	elemL, _, _, okL := Trim[string](L, frags)
	require.True(t, okL)
	require.Equal(t, "left", elemL)

	elemR, _, _, okR := Trim[string](R, frags)
	require.True(t, okR)
	require.Equal(t, "right", elemR)
}

func TestTrimLevelCarrierPairsWithPendingLeaf(t *testing.T) {
	carrier := &Bin[int]{Level: 4}
	frags := &Trees[int]{Frags: cons[int](NewLeaf(1), cons[int](carrier, nil))}

	elem, lev, rest, ok := Trim[int](L, frags)
	require.True(t, ok)
	require.Equal(t, 1, elem)
	require.Equal(t, Level(4), lev)
	require.IsType(t, &Trees[int]{}, rest)
}

func TestTrimAdjacentLeavesPanics(t *testing.T) {
	frags := &Trees[int]{Frags: cons[int](NewLeaf(1), cons[int](NewLeaf(2), nil))}
	require.Panics(t, func() {
		Trim[int](L, frags)
	})
}
