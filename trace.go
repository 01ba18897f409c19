package scan

import (
	"fmt"
	"io"
)

// Trace wraps a pattern so that every match attempt is logged to w.
func Trace[T any](w io.Writer, name string, pattern Pattern[T]) Pattern[T] {
	return &tracePattern[T]{w: w, name: name, pattern: pattern}
}

type tracePattern[T any] struct {
	w       io.Writer
	name    string
	pattern Pattern[T]
}

func (t *tracePattern[T]) Match(data []T) (bool, int) {
	ok, size := t.pattern.Match(data)
	fmt.Fprintf(t.w, "%s: matched=%v size=%d\n", t.name, ok, size)
	return ok, size
}

func (t *tracePattern[T]) Size() int { return t.pattern.Size() }

// TraceVisitor wraps a visitor so that every Accept call is logged to w with
// the cursor positions before and after.
func TraceVisitor[T any](w io.Writer, name string, v Visitor[T]) Visitor[T] {
	return &traceVisitor[T]{w: w, name: name, v: v}
}

type traceVisitor[T any] struct {
	w    io.Writer
	name string
	v    Visitor[T]
}

func (t *traceVisitor[T]) Accept(s *Scanner[T]) error {
	start := s.Position()
	err := t.v.Accept(s)
	fmt.Fprintf(t.w, "%s: %d..%d err=%v\n", t.name, start, s.Position(), err)
	return err
}
