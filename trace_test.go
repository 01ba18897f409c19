package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracePattern(t *testing.T) {
	w := &strings.Builder{}
	s := New([]byte("abc"))
	_, ok, err := Recognize(Trace[byte](w, "a", Literal[byte]("a")), s)
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = Recognize(Trace[byte](w, "z", Literal[byte]("z")), s)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "a: matched=true size=1\nz: matched=false size=0\n", w.String())
}

type traceTestVisitor struct{}

func (traceTestVisitor) Accept(s *Scanner[byte]) error {
	_, err := Expect(Literal[byte]("ab"), s)
	return err
}

func TestTraceVisitor(t *testing.T) {
	w := &strings.Builder{}
	s := New([]byte("abc"))
	err := TraceVisitor[byte](w, "pair", traceTestVisitor{}).Accept(s)
	require.NoError(t, err)
	assert.Equal(t, "pair: 0..2 err=<nil>\n", w.String())
}
