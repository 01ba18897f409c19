package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerPeekDoesNotAdvance(t *testing.T) {
	s := New([]rune("abc"))
	r, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, s.Position())
	r, ok = s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, s.Position())
}

func TestScannerBump(t *testing.T) {
	s := New([]rune("ab"))
	r, ok := s.Bump()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, s.Position())
	r, ok = s.Bump()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.True(t, s.EOF())

	// Bumping past the end reports failure and does not move the cursor.
	_, ok = s.Bump()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Position())
}

func TestScannerRemaining(t *testing.T) {
	s := New([]byte("hello"))
	assert.Equal(t, []byte("hello"), s.Remaining())
	s.Bump()
	s.Bump()
	assert.Equal(t, []byte("llo"), s.Remaining())
	assert.Equal(t, []byte("hello"), s.Data())
	assert.Equal(t, 5, s.Len())
}

func TestScannerRewindRoundTrip(t *testing.T) {
	s := New([]byte("hello"))
	s.Bump()
	s.Bump()
	pos := s.Position()
	before := s.Remaining()
	s.Bump()
	s.Bump()
	assert.NoError(t, s.Rewind(pos))
	assert.Equal(t, pos, s.Position())
	assert.Equal(t, before, s.Remaining())
}

func TestScannerRewindOutOfRange(t *testing.T) {
	s := New([]byte("hi"))
	s.Bump()
	err := s.Rewind(3)
	assert.Error(t, err)
	assert.Equal(t, 1, s.Position())
	err = s.Rewind(-1)
	assert.Error(t, err)
	assert.Equal(t, 1, s.Position())
}

func TestScannerCursorBounded(t *testing.T) {
	s := New([]byte("xy"))
	for i := 0; i < 10; i++ {
		s.Peek()
		s.Bump()
		assert.True(t, s.Position() >= 0 && s.Position() <= s.Len())
	}
}
