package scan

// A Visitor constructs itself from a Scanner.
//
// Accept drives any sequence of Recognize/Expect calls and nested Accept
// calls against the shared scanner, in the exact order the grammar requires.
// The first failure stops the sequence and propagates to the caller; nothing
// is rewound automatically. A visitor trying alternatives from one position
// must snapshot Position before the first attempt and Rewind to it before
// the next:
//
//	pos := s.Position()
//	if err := first.Accept(s); err != nil {
//		if err := s.Rewind(pos); err != nil {
//			return err
//		}
//		return second.Accept(s)
//	}
//
// Visitors nest to arbitrary depth through ordinary call-stack recursion.
// The framework imposes no depth limit and does not detect left recursion;
// bounding both is the grammar author's responsibility.
type Visitor[T any] interface {
	Accept(s *Scanner[T]) error
}
