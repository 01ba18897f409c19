// Command scan demonstrates composing recognisers into grammars: an addition
// equation of the form "1 + 2 = 3" and a turbofish of the form "::<45>".
package main

import (
	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/scan"
	"github.com/alecthomas/scan/ascii"
)

var cli struct {
	Addition struct {
		Expr string `arg:"" help:"Equation of the form \"1 + 2 = 3\"."`
	} `cmd:"" help:"Parse an addition equation."`
	Turbofish struct {
		Expr string `arg:"" help:"Operator of the form \"::<45>\"."`
	} `cmd:"" help:"Parse a turbofish operator."`
}

// Addition is the grammar "<lhs> + <rhs> = <result>".
type Addition struct {
	LHS    uint64
	RHS    uint64
	Result uint64
}

func (a *Addition) Accept(s *scan.Scanner[byte]) error {
	var lhs, rhs, result ascii.Number
	if err := lhs.Accept(s); err != nil {
		return err
	}
	if err := expect(s, ascii.Whitespace, ascii.Plus, ascii.Whitespace); err != nil {
		return err
	}
	if err := rhs.Accept(s); err != nil {
		return err
	}
	if err := expect(s, ascii.Whitespace, ascii.Equal, ascii.Whitespace); err != nil {
		return err
	}
	if err := result.Accept(s); err != nil {
		return err
	}
	a.LHS, a.RHS, a.Result = lhs.Value, rhs.Value, result.Value
	return nil
}

// Turbofish is the grammar "::<N>".
type Turbofish struct {
	Value uint64
}

func (t *Turbofish) Accept(s *scan.Scanner[byte]) error {
	if _, err := scan.Expect(scan.Literal[byte]("::<"), s); err != nil {
		return err
	}
	var n ascii.Number
	if err := n.Accept(s); err != nil {
		return err
	}
	if _, err := scan.Expect(ascii.GreaterThan, s); err != nil {
		return err
	}
	t.Value = n.Value
	return nil
}

func expect(s *scan.Scanner[byte], tokens ...ascii.Token) error {
	for _, t := range tokens {
		if _, err := scan.Expect(t, s); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	kctx := kong.Parse(&cli, kong.Description(`A demo of composable zero-copy recognisers.`))
	var err error
	switch kctx.Command() {
	case "addition <expr>":
		a := &Addition{}
		err = a.Accept(scan.New([]byte(cli.Addition.Expr)))
		if err == nil {
			repr.Println(a)
		}
	case "turbofish <expr>":
		t := &Turbofish{}
		err = t.Accept(scan.New([]byte(cli.Turbofish.Expr)))
		if err == nil {
			repr.Println(t)
		}
	}
	kctx.FatalIfErrorf(err)
}
