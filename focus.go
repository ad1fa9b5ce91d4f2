package raz

// levelBin builds the "standing-in" level-carrier node trim recognises: a
// Bin whose children are both Nil and whose count is zero, carrying only a
// level.
func levelBin[T any](lev Level) Tree[T] {
	return &Bin[T]{Level: lev}
}

// clamp restricts pos to [0, Count(t)] — an out-of-range focus position
// silently clamps rather than erroring.
func clamp[T any](t Tree[T], pos int) int {
	if pos < 0 {
		return 0
	}
	if n := Count[T](t); pos > n {
		return n
	}
	return pos
}

// Focus produces a zipper whose cursor falls between the pos-th and
// (pos+1)-th elements of t, clamping pos to [0, Count(t)].
//
// Internally this splits t along pos using Append's inverse: a position
// exactly at a Bin's left-subtree boundary stops there and hands that
// Bin's own level to the cursor; otherwise the split recurses into
// whichever side holds pos, re-attaching the untraveled sibling and the
// passed-over separator on the far side via Append. This reduces focus to
// the already-verified Append as its sole primitive — a standard
// split-by-rank over a level-ordered tree — rather than accumulating
// synthetic placeholder Bins alongside the descent; the two produce the
// same in-order element sequence, which is all a focus/unfocus round trip
// is required to preserve (see focus_test.go for worked examples).
func Focus[T any](t Tree[T], pos int) Zipper[T] {
	pos = clamp[T](t, pos)
	left, lev, right := split[T](t, pos)
	return Zipper[T]{Left: NewTrees[T](left), CursorLevel: lev, Right: NewTrees[T](right)}
}

// split partitions t at pos leaves, returning the left and right partial
// trees and the level that should become the cursor between them. At the
// two global extremes (pos == 0 or pos == Count(t)) no real separator
// exists to reuse, so the returned level is arbitrary — as immaterial as
// the level argument to Empty.
func split[T any](t Tree[T], pos int) (leftT Tree[T], lev Level, rightT Tree[T]) {
	switch n := t.(type) {
	case nil:
		return nil, 0, nil
	case *Leaf[T]:
		if pos == 0 {
			return nil, 0, n
		}
		return n, 0, nil
	case *Bin[T]:
		cL := Count[T](n.Left)
		switch {
		case pos == cL:
			return n.Left, n.Level, n.Right
		case pos < cL:
			ll, llev, lr := split[T](n.Left, pos)
			newRight := Append[T](Append[T](lr, levelBin[T](n.Level)), n.Right)
			return ll, llev, newRight
		default:
			rl, rlev, rr := split[T](n.Right, pos-cL)
			newLeft := Append[T](Append[T](n.Left, levelBin[T](n.Level)), rl)
			return newLeft, rlev, rr
		}
	default:
		invariant(false, "raz: unknown tree node type %T", t)
		return nil, 0, nil
	}
}

// Unfocus reassembles a single tree whose in-order leaves are the
// concatenation of the left stream (read so the element nearest the
// cursor ends up innermost), a Bin carrying the cursor level, and the
// right stream.
func Unfocus[T any](z Zipper[T]) Tree[T] {
	left := foldLeft[T](z.Left)
	right := foldRight[T](levelBin[T](z.CursorLevel), z.Right)
	return Append[T](left, right)
}

// foldLeft folds a left stream into a tree seeded at Nil. A Cons chain is
// processed tail-first (farthest element before nearest), each element's
// own (Leaf, level) pair appended onto the growing tree; a Trees fragment
// list is folded in list order.
func foldLeft[T any](s Stream[T]) Tree[T] {
	switch st := s.(type) {
	case *Cons[T]:
		inner := foldLeft[T](st.Rest)
		contribution := Append[T](NewLeaf(st.Elem), levelBin[T](st.Level))
		return Append[T](inner, contribution)
	case *Trees[T]:
		return foldFragsForward[T](st.Frags)
	default:
		invariant(false, "raz: unknown stream type %T", s)
		return nil
	}
}

// foldRight folds a right stream onto the seed (the cursor-level Bin). A
// Cons chain contributes its (level, Leaf) pair immediately after the
// accumulator, nearest element first, then recurses into the remainder; a
// Trees fragment list is folded in reverse list order — the mirror image
// of foldLeft.
func foldRight[T any](seed Tree[T], s Stream[T]) Tree[T] {
	switch st := s.(type) {
	case *Cons[T]:
		contribution := Append[T](levelBin[T](st.Level), NewLeaf(st.Elem))
		return foldRight[T](Append[T](seed, contribution), st.Rest)
	case *Trees[T]:
		return Append[T](seed, foldFragsReversed[T](st.Frags))
	default:
		invariant(false, "raz: unknown stream type %T", s)
		return nil
	}
}

func foldFragsForward[T any](frags *fragList[T]) Tree[T] {
	if frags == nil {
		return nil
	}
	return Append[T](frags.Head, foldFragsForward[T](frags.Tail))
}

func foldFragsReversed[T any](frags *fragList[T]) Tree[T] {
	if frags == nil {
		return nil
	}
	return Append[T](foldFragsReversed[T](frags.Tail), frags.Head)
}
