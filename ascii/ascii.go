// Package ascii provides byte-domain patterns and visitors built purely on
// the scan package's public contracts: fixed-size single-byte tokens and a
// variable-length digit run, plus a Number visitor converting a digit run
// into an integer.
package ascii

import (
	"strconv"

	"github.com/alecthomas/scan"
)

// Token is a single-byte pattern matching exactly itself.
type Token byte

// Punctuation recognised by this package.
const (
	OpenParen   Token = '('
	CloseParen  Token = ')'
	Comma       Token = ','
	Semicolon   Token = ';'
	Colon       Token = ':'
	Whitespace  Token = ' '
	GreaterThan Token = '>'
	LessThan    Token = '<'
	Exclamation Token = '!'
	Quote       Token = '\''
	DoubleQuote Token = '"'
	Equal       Token = '='
	Plus        Token = '+'
)

func (t Token) Match(data []byte) (bool, int) {
	if len(data) == 0 || data[0] != byte(t) {
		return false, 0
	}
	return true, 1
}

// Size of a Token is always exactly one byte.
func (t Token) Size() int { return 1 }

func (t Token) String() string { return strconv.QuoteRune(rune(t)) }

// Digits matches a maximal run of ASCII digits. It has no static size.
type Digits struct{}

func (Digits) Match(data []byte) (bool, int) {
	n := 0
	for n < len(data) && data[n] >= '0' && data[n] <= '9' {
		n++
	}
	return n > 0, n
}

func (Digits) Size() int { return 0 }

func (Digits) String() string { return "digits" }

// Number recognises a run of digits and converts it to a uint64.
type Number struct {
	Value uint64
}

func (n *Number) Accept(s *scan.Scanner[byte]) error {
	pos := s.Position()
	raw, err := scan.Expect(Digits{}, s)
	if err != nil {
		return err
	}
	value, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return scan.AnnotateError(pos, err)
	}
	n.Value = value
	return nil
}
