package scan

// A Scanner holds a borrowed view of the input and a cursor into it.
//
// The view is never copied or reallocated; every slice handed out by the
// Scanner aliases the original data and must not outlive it. A Scanner is
// driven by exactly one caller at a time. See the package documentation for
// the concurrency model.
type Scanner[T any] struct {
	data   []T
	cursor int
}

// New creates a Scanner over data with the cursor at the start.
func New[T any](data []T) *Scanner[T] {
	return &Scanner[T]{data: data}
}

// Data returns the full underlying view, independent of the cursor.
func (s *Scanner[T]) Data() []T { return s.data }

// Len returns the total length of the underlying view.
func (s *Scanner[T]) Len() int { return len(s.data) }

// Position returns the current cursor value.
func (s *Scanner[T]) Position() int { return s.cursor }

// EOF reports whether the cursor has reached the end of the input.
func (s *Scanner[T]) EOF() bool { return s.cursor >= len(s.data) }

// Remaining returns the unconsumed portion of the input.
func (s *Scanner[T]) Remaining() []T { return s.data[s.cursor:] }

// Peek returns the element at the cursor without consuming it.
//
// The second return value is false at end of input.
func (s *Scanner[T]) Peek() (T, bool) {
	if s.EOF() {
		var zero T
		return zero, false
	}
	return s.data[s.cursor], true
}

// Bump consumes and returns the element at the cursor.
//
// The second return value is false at end of input, in which case the cursor
// does not move.
func (s *Scanner[T]) Bump() (T, bool) {
	if s.EOF() {
		var zero T
		return zero, false
	}
	t := s.data[s.cursor]
	s.cursor++
	return t, true
}

// Rewind moves the cursor to a position previously obtained from Position.
//
// A position outside the input is a caller bug and is rejected with an error
// rather than clamped, leaving the cursor unchanged.
func (s *Scanner[T]) Rewind(pos int) error {
	if pos < 0 || pos > len(s.data) {
		return Errorf(s.cursor, "rewind to %d is outside input of length %d", pos, len(s.data))
	}
	s.cursor = pos
	return nil
}

// advance moves the cursor forward by n elements. Callers guarantee n does
// not pass the end of the input.
func (s *Scanner[T]) advance(n int) {
	s.cursor += n
}
