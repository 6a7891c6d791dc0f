package main

import (
	"strconv"

	"github.com/alecthomas/parsec"
)

type Group struct {
	Expression *Expression `json:",omitempty"`
}

type Option struct {
	Expression *Expression `json:",omitempty"`
}

type Repetition struct {
	Expression *Expression `json:",omitempty"`
}

type Literal struct {
	Start string  `json:",omitempty"`
	End   *string `json:",omitempty"`
}

type Term struct {
	Name       string      `json:",omitempty"`
	Literal    *Literal    `json:",omitempty"`
	Group      *Group      `json:",omitempty"`
	Option     *Option     `json:",omitempty"`
	Repetition *Repetition `json:",omitempty"`
}

type Sequence struct {
	Terms []*Term `json:",omitempty"`
}

type Expression struct {
	Alternatives []*Sequence `json:",omitempty"`
}

type Production struct {
	Name       string        `json:",omitempty"`
	Expression []*Expression `json:",omitempty"`
}

type EBNF struct {
	Productions []*Production `json:",omitempty"`
}

var grammar = build()

func parse(filename, text string) (*EBNF, error) {
	return parsec.Evaluate(grammar, text, parsec.Filename(filename))
}

func token(s string) parsec.Parser[string] { return parsec.Trim(parsec.Literal(s)) }

func expect[R any](p parsec.Parser[R], what string) parsec.Parser[R] {
	return parsec.Commit(p, func(in *parsec.Input, pos int) error {
		return parsec.Errorf("unexpected %s (expected %s)", in.Near(pos), what)
	})
}

func build() parsec.Parser[*EBNF] {
	var expression parsec.Parser[*Expression]

	name := parsec.Trim(parsec.Match(`[a-zA-Z_]\w*`))
	str := parsec.Trim(parsec.MapErr(parsec.Match("\"(?:\\\\.|[^\"\\\\])*\"|`[^`]*`"), strconv.Unquote))
	end := parsec.Map(parsec.SkipLeft(token("…"), expect(str, "token")), func(s string) *string { return &s })
	literal := parsec.Map(parsec.And(str, parsec.Optional[*string](end, nil)), func(v parsec.Pair[string, *string]) *Literal {
		return &Literal{Start: v.Left, End: v.Right}
	})
	nested := func(open, close string) parsec.Parser[*Expression] {
		return parsec.Surround(expect(parsec.Ref(&expression), "expression"), token(open), expect(token(close), strconv.Quote(close)))
	}

	term := parsec.OneOf(
		parsec.Map(name, func(s string) *Term { return &Term{Name: s} }),
		parsec.Map(literal, func(l *Literal) *Term { return &Term{Literal: l} }),
		parsec.Map(nested("(", ")"), func(e *Expression) *Term { return &Term{Group: &Group{e}} }),
		parsec.Map(nested("[", "]"), func(e *Expression) *Term { return &Term{Option: &Option{e}} }),
		parsec.Map(nested("{", "}"), func(e *Expression) *Term { return &Term{Repetition: &Repetition{e}} }),
	)
	sequence := parsec.Map(parsec.Many1(parsec.Named("term", term)), func(terms []*Term) *Sequence {
		return &Sequence{Terms: terms}
	})
	expression = parsec.Map(parsec.SepBy1(sequence, token("|")), func(alts []*Sequence) *Expression {
		return &Expression{Alternatives: alts}
	})
	production := parsec.Map(
		parsec.And(
			parsec.SkipRight(name, expect(token("="), `"="`)),
			parsec.SkipRight(parsec.Many0(parsec.Ref(&expression)), expect(token("."), `"."`)),
		),
		func(v parsec.Pair[string, []*Expression]) *Production {
			return &Production{Name: v.Left, Expression: v.Right}
		},
	)
	return parsec.Map(
		parsec.Surround(parsec.Many0(parsec.Named("production", production)), parsec.Many0(parsec.WhiteSpace()), expect(parsec.End(), "production")),
		func(productions []*Production) *EBNF { return &EBNF{Productions: productions} },
	)
}
