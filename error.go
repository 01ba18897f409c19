package scan

import "fmt"

// Error represents an error while scanning.
//
// The error carries the scanner position at which it occurred.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the error occurred at.
	Position() int
}

// FormatError formats a message with its position prefixed.
func FormatError(pos int, message string) string {
	return fmt.Sprintf("%d: %s", pos, message)
}

// UnexpectedTokenError is returned when the input at the current position
// does not satisfy a required pattern.
//
// This is useful for composing recognisers in order to detect when a
// sub-recogniser has terminated.
type UnexpectedTokenError struct {
	Pos      int
	Expected string
}

func (u *UnexpectedTokenError) Error() string {
	return FormatError(u.Pos, u.Message())
}

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	if u.Expected != "" {
		return fmt.Sprintf("unexpected token (expected %s)", u.Expected)
	}
	return "unexpected token"
}

func (u *UnexpectedTokenError) Position() int { return u.Pos } // nolint: golint

// UnexpectedEOFError is returned when the input ends where the grammar
// requires more.
type UnexpectedEOFError struct {
	Pos int
}

func (u *UnexpectedEOFError) Error() string   { return FormatError(u.Pos, u.Message()) }
func (u *UnexpectedEOFError) Message() string { return "unexpected end of input" }
func (u *UnexpectedEOFError) Position() int   { return u.Pos }

type parseError struct {
	message string
	pos     int
}

func (p *parseError) Error() string   { return FormatError(p.pos, p.message) }
func (p *parseError) Message() string { return p.message }
func (p *parseError) Position() int   { return p.pos }

// Errorf creates a new Error at the given position.
func Errorf(pos int, format string, args ...interface{}) error {
	return &parseError{message: fmt.Sprintf(format, args...), pos: pos}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it is returned unmodified.
func AnnotateError(pos int, err error) error {
	if perr, ok := err.(Error); ok {
		return perr
	}
	return &parseError{message: err.Error(), pos: pos}
}
