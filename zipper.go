package raz

import "fmt"

// Zipper is the focused representation of a RAZ sequence: a cursor level
// flanked by a left and a right stream.
type Zipper[T any] struct {
	Left        Stream[T]
	CursorLevel Level
	Right       Stream[T]
}

// Empty returns a zipper over the empty sequence. The chosen level is
// immaterial except that an immediately-following Unfocus yields
// Bin(level, 0, Nil, Nil).
func Empty[T any](level Level) Zipper[T] {
	return Zipper[T]{Left: EmptyTrees[T](), CursorLevel: level, Right: EmptyTrees[T]()}
}

// ZipperString renders a zipper for debugging. Not a serialization
// format.
func ZipperString[T any](z Zipper[T]) string {
	return fmt.Sprintf("Zipper(%s, %d, %s)", streamString[T](z.Left), z.CursorLevel, streamString[T](z.Right))
}

func streamString[T any](s Stream[T]) string {
	switch st := s.(type) {
	case *Cons[T]:
		return fmt.Sprintf("Cons(%v, %d, %s)", st.Elem, st.Level, streamString[T](st.Rest))
	case *Trees[T]:
		return fmt.Sprintf("Trees(%s)", fragListString(st.Frags))
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

func fragListString[T any](frags *fragList[T]) string {
	if frags == nil {
		return "[]"
	}
	return fmt.Sprintf("%s :: %s", TreeString[T](frags.Head), fragListString(frags.Tail))
}

// Command is one of the four zipper edits, each parameterised by a
// Direction.
type Command[T any] interface {
	isCommand()
}

// InsertCmd prepends Elem, separated by Level, to the chosen side. Always
// succeeds, in O(1).
type InsertCmd[T any] struct {
	Dir   Direction
	Elem  T
	Level Level
}

func (InsertCmd[T]) isCommand() {}

// RemoveCmd discards the element exposed by trimming the chosen side,
// together with its separating level. A no-op if that side is exhausted.
type RemoveCmd[T any] struct {
	Dir Direction
}

func (RemoveCmd[T]) isCommand() {}

// ReplaceCmd substitutes the element exposed by trimming the chosen side,
// reusing its level. A no-op if that side is exhausted.
type ReplaceCmd[T any] struct {
	Dir  Direction
	Elem T
}

func (ReplaceCmd[T]) isCommand() {}

// MoveCmd moves the element exposed by trimming the chosen side across the
// cursor, swapping it with the old cursor level. A no-op if that side is
// exhausted.
type MoveCmd[T any] struct {
	Dir Direction
}

func (MoveCmd[T]) isCommand() {}

func side[T any](z Zipper[T], d Direction) Stream[T] {
	if d == L {
		return z.Left
	}
	return z.Right
}

func withSide[T any](z Zipper[T], d Direction, s Stream[T]) Zipper[T] {
	if d == L {
		z.Left = s
	} else {
		z.Right = s
	}
	return z
}

// innerBias returns the trim direction that exposes the element nearest
// the cursor on side d. A left-stream Trees fragment was split off
// immediately before the cursor, so the element nearest the cursor sits
// at its rightmost leaf; a right-stream fragment's nearest element sits
// at its leftmost leaf. Trimming a side therefore needs the bias for
// the OPPOSITE side's child order, not its own.
func innerBias(d Direction) Direction {
	if d == L {
		return R
	}
	return L
}

// DoCmd dispatches one of the four command shapes against a zipper,
// producing a new zipper. It is total: every command either edits the
// zipper or, on an exhausted side, returns it unchanged.
//
// Direction subtlety: the trim that exposes a command's element is
// invoked as Trim(innerBias(c.Dir), side(z, c.Dir)), not
// Trim(c.Dir, ...). c.Dir picks which stream field is read and written;
// the bias trim uses while descending into that stream's Trees
// fragments is the opposite, per innerBias above.
func DoCmd[T any](cmd Command[T], z Zipper[T]) Zipper[T] {
	switch c := cmd.(type) {
	case InsertCmd[T]:
		return withSide(z, c.Dir, &Cons[T]{Elem: c.Elem, Level: c.Level, Rest: side(z, c.Dir)})
	case RemoveCmd[T]:
		_, _, rest, ok := Trim[T](innerBias(c.Dir), side(z, c.Dir))
		if !ok {
			return z
		}
		return withSide(z, c.Dir, rest)
	case ReplaceCmd[T]:
		_, lev, rest, ok := Trim[T](innerBias(c.Dir), side(z, c.Dir))
		if !ok {
			return z
		}
		return withSide(z, c.Dir, &Cons[T]{Elem: c.Elem, Level: lev, Rest: rest})
	case MoveCmd[T]:
		elem, lev, rest, ok := Trim[T](innerBias(c.Dir), side(z, c.Dir))
		if !ok {
			return z
		}
		oldCursor := z.CursorLevel
		if c.Dir == L {
			return Zipper[T]{
				Left:        rest,
				CursorLevel: lev,
				Right:       &Cons[T]{Elem: elem, Level: oldCursor, Rest: z.Right},
			}
		}
		return Zipper[T]{
			Left:        &Cons[T]{Elem: elem, Level: oldCursor, Rest: z.Left},
			CursorLevel: lev,
			Right:       rest,
		}
	default:
		panic(fmt.Sprintf("raz: unknown command type %T", cmd))
	}
}
