package raz

import "fmt"

// invariant panics with a formatted message when cond is false. It marks
// the fatal invariant-violation points in this package: a malformed trim,
// and two adjacent leaves reaching append without a separating bin. Focus
// does not call it: split treats a Nil or Leaf reached by its descent as a
// base case and never panics on one. These are programmer errors constructing a tree from outside this package, not
// recoverable conditions — callers should never see them in normal use.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
