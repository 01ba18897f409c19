package scan

import "fmt"

// Recognize runs pattern against the scanner's unconsumed input.
//
// The outcome is three-way. On a match the consumed elements are returned as
// a sub-slice of the scanner's data and the cursor advances by exactly their
// length. On no-match ok is false and the cursor is untouched; this is a
// normal negative result, not an error. An error is reserved for malformed
// requests: recognition attempted at end of input, or a pattern reporting a
// length beyond the remaining data.
func Recognize[T any](pattern Pattern[T], s *Scanner[T]) (out []T, ok bool, err error) {
	if s.EOF() {
		return nil, false, &UnexpectedEOFError{Pos: s.Position()}
	}
	rest := s.Remaining()
	ok, size := pattern.Match(rest)
	if !ok {
		return nil, false, nil
	}
	if size > len(rest) {
		return nil, false, Errorf(s.Position(), "pattern matched %d elements but only %d remain", size, len(rest))
	}
	s.advance(size)
	return rest[:size], true, nil
}

// Expect recognises pattern like Recognize but treats absence as an error.
//
// No-match becomes an UnexpectedTokenError, and a fixed-size pattern larger
// than the remaining input becomes an UnexpectedEOFError, both carrying the
// position of the attempt.
func Expect[T any](pattern Pattern[T], s *Scanner[T]) ([]T, error) {
	if pattern.Size() > len(s.Remaining()) {
		return nil, &UnexpectedEOFError{Pos: s.Position()}
	}
	out, ok, err := Recognize(pattern, s)
	if err != nil {
		return nil, err
	}
	if !ok {
		terr := &UnexpectedTokenError{Pos: s.Position()}
		if str, ok := pattern.(fmt.Stringer); ok {
			terr.Expected = str.String()
		}
		return nil, terr
	}
	return out, nil
}
