package scan

import "golang.org/x/exp/slices"

// Match is the test half of a pattern: does the pattern match at the very
// start of a candidate slice?
//
// Implementations must be pure, must never read past the end of data, and on
// a match must report a length no greater than len(data). When the reported
// bool is false the length is meaningless and callers ignore it.
type Match[T any] interface {
	Match(data []T) (bool, int)
}

// MatchSize is the size half of a pattern: its statically known length.
//
// A return of 0 is the sentinel for "variable length": the pattern's extent
// is only discoverable by running Match, eg. a run of digits.
type MatchSize interface {
	Size() int
}

// A Pattern is anything that can be recognised against a Scanner.
type Pattern[T any] interface {
	Match[T]
	MatchSize
}

// MatchFunc adapts a plain function to a variable-length Pattern.
type MatchFunc[T any] func(data []T) (bool, int)

func (f MatchFunc[T]) Match(data []T) (bool, int) { return f(data) }

// Size always returns the variable-length sentinel.
func (MatchFunc[T]) Size() int { return 0 }

// Literal is a fixed sequence of elements matched exactly.
type Literal[T comparable] []T

func (l Literal[T]) Match(data []T) (bool, int) {
	if len(data) < len(l) || !slices.Equal(data[:len(l)], []T(l)) {
		return false, 0
	}
	return true, len(l)
}

func (l Literal[T]) Size() int { return len(l) }
