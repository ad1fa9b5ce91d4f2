package raz

import "fmt"

// Direction selects which side of a zipper a command acts on, or, for
// Trim, which child of a split Bin is visited first.
type Direction int

const (
	L Direction = iota
	R
)

// Stream is one side of a zipper: either an explicit Cons chain of
// elements already exposed at the cursor's edge, or a Trees fragment
// list holding tree pieces not yet walked.
type Stream[T any] interface {
	isStream()
}

// Cons is an element adjacent to the cursor (or to the previous Cons),
// followed by the level separating it from what comes next.
type Cons[T any] struct {
	Elem  T
	Level Level
	Rest  Stream[T]
}

func (*Cons[T]) isStream() {}

// Trees is a lazily-held list of tree fragments, produced by focus or by
// trim splitting a Bin. The nil *fragList is the empty list, a legitimate
// terminal that trim must report as exhausted rather than fail on.
type Trees[T any] struct {
	Frags *fragList[T]
}

func (*Trees[T]) isStream() {}

// fragList is a persistent cons-list of tree fragments: O(1) prepend and
// full structural sharing. A Go slice would force a copy on every prepend
// during trim's splitting; this does not.
type fragList[T any] struct {
	Head Tree[T]
	Tail *fragList[T]
}

func cons[T any](head Tree[T], tail *fragList[T]) *fragList[T] {
	return &fragList[T]{Head: head, Tail: tail}
}

// NewTrees wraps a single tree fragment as a one-element Trees stream —
// the shape focus produces at its stopping point.
func NewTrees[T any](t Tree[T]) Stream[T] {
	return &Trees[T]{Frags: cons[T](t, nil)}
}

// EmptyTrees is the sentinel for nothing past the cursor on this side.
func EmptyTrees[T any]() Stream[T] {
	return &Trees[T]{Frags: nil}
}

// Trim exposes the next (element, level) pair from a stream, splitting
// Trees fragments as needed. Direction only affects which child of a Bin
// is visited first when a fragment is split; it does not affect Cons
// streams, which have no embedded-tree ambiguity to resolve.
//
// ok is false only when the stream is exhausted (Trees(nil) reached with
// no pending element) — a legitimate terminal, not a failure.
func Trim[T any](dir Direction, s Stream[T]) (elem T, level Level, rest Stream[T], ok bool) {
	switch st := s.(type) {
	case *Cons[T]:
		return st.Elem, st.Level, st.Rest, true
	case *Trees[T]:
		return trimFrags[T](dir, st.Frags)
	default:
		panic(fmt.Sprintf("raz: unknown stream type %T", s))
	}
}

// trimFrags walks a fragment list carrying an "element seen but not yet
// paired with its level" slot, pending.
func trimFrags[T any](dir Direction, frags *fragList[T]) (elem T, level Level, rest Stream[T], ok bool) {
	var pending T
	havePending := false
	for frags != nil {
		head, tail := frags.Head, frags.Tail
		switch n := head.(type) {
		case nil:
			frags = tail
		case *Leaf[T]:
			invariant(!havePending, "raz: trim found two adjacent leaves in a Trees fragment")
			pending = n.Elem
			havePending = true
			frags = tail
		case *Bin[T]:
			if levelCarrier(n) {
				if havePending {
					return pending, n.Level, &Trees[T]{Frags: tail}, true
				}
				frags = tail
				continue
			}
			carrier := &Bin[T]{Level: n.Level}
			var split *fragList[T]
			if dir == L {
				split = cons[T](n.Left, cons[T](carrier, cons[T](n.Right, tail)))
			} else {
				split = cons[T](n.Right, cons[T](carrier, cons[T](n.Left, tail)))
			}
			frags = split
		default:
			panic(fmt.Sprintf("raz: unknown tree node type %T", head))
		}
	}
	invariant(!havePending, "raz: trim exhausted a Trees fragment with a pending element and no level")
	var zero T
	return zero, 0, &Trees[T]{Frags: nil}, false
}
