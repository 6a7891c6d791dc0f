// Package ebnf compiles grammars written in the EBNF dialect of "golang.org/x/exp/ebnf" into
// parsec parsers.
//
// The compiled parser is scannerless. Productions whose names start with a lower-case letter are
// lexical and match their terminals exactly. In all other productions whitespace is skipped
// before every terminal, and after the whole match if the start production is not lexical.
//
// Alternatives are ordered: the first alternative that matches wins, as with parsec.OneOf. A
// grammar that depends on a later, longer alternative must list it first.
//
// References from a non-lexical production to a lexical one are treated as terminals too. Here's
// an example grammar for parsing assignments such as "x = 42":
//
//	Assignment = identifier "=" number .
//	identifier = alpha { alpha | digit } .
//	number = digit { digit } .
//	alpha = "a"…"z" | "A"…"Z" | "_" .
//	digit = "0"…"9" .
package ebnf

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	xebnf "golang.org/x/exp/ebnf"

	"github.com/alecthomas/parsec"
)

// Parse an EBNF grammar from r.
func Parse(filename string, r io.Reader) (xebnf.Grammar, error) {
	return xebnf.Parse(filename, r)
}

// ParseString parses an EBNF grammar from a string.
func ParseString(grammar string) (xebnf.Grammar, error) {
	return Parse("<grammar>", strings.NewReader(grammar))
}

type compiler struct {
	productions map[string]parsec.Parser[struct{}]
}

// Compile grammar into a parser for the production start.
//
// The grammar is verified with start as its root, so every production must be reachable from
// start. The value of the parser is the text it matched.
func Compile(grammar xebnf.Grammar, start string) (parsec.Parser[string], error) {
	if err := xebnf.Verify(grammar, start); err != nil {
		return nil, err
	}
	c := &compiler{productions: map[string]parsec.Parser[struct{}]{}}
	for name, production := range grammar {
		p, err := c.compile(production.Expr, isLexical(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", production.Pos(), name, err)
		}
		c.productions[name] = parsec.Named(name, p)
	}
	root := c.productions[start]
	if !isLexical(start) {
		root = parsec.SkipRight(root, skipSpace)
	}
	return func(in *parsec.Input, pos int) parsec.Result[string] {
		r := root(in, pos)
		if !r.OK() {
			return parsec.Result[string]{Outcome: r.Outcome, Next: r.Next, Err: r.Err}
		}
		return parsec.Ok(in.Text[pos:r.Next], r.Next)
	}, nil
}

// MustCompile parses and compiles grammar, panicking on error.
func MustCompile(grammar, start string) parsec.Parser[string] {
	ast, err := ParseString(grammar)
	if err != nil {
		panic(err)
	}
	p, err := Compile(ast, start)
	if err != nil {
		panic(err)
	}
	return p
}

var skipSpace = parsec.Value(parsec.Many0(parsec.WhiteSpace()), struct{}{})

func (c *compiler) compile(expr xebnf.Expression, lexical bool) (parsec.Parser[struct{}], error) { // nolint: gocyclo
	switch n := expr.(type) {
	case xebnf.Alternative:
		alternatives := make([]parsec.Parser[struct{}], 0, len(n))
		for _, an := range n {
			p, err := c.compile(an, lexical)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, p)
		}
		return parsec.OneOf(alternatives...), nil

	case xebnf.Sequence:
		terms := make([]parsec.Parser[struct{}], 0, len(n))
		for _, sn := range n {
			p, err := c.compile(sn, lexical)
			if err != nil {
				return nil, err
			}
			terms = append(terms, p)
		}
		return parsec.Value(parsec.Sequence(terms...), struct{}{}), nil

	case *xebnf.Group:
		return c.compile(n.Body, lexical)

	case *xebnf.Option:
		p, err := c.compile(n.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parsec.Optional(p, struct{}{}), nil

	case *xebnf.Repetition:
		p, err := c.compile(n.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parsec.Value(parsec.Many0(p), struct{}{}), nil

	case *xebnf.Name:
		name := n.String
		ref := parsec.Deferred(func() parsec.Parser[struct{}] { return c.productions[name] })
		if isLexical(name) {
			return terminal(ref, lexical), nil
		}
		return ref, nil

	case *xebnf.Token:
		return terminal(parsec.Literal(n.String), lexical), nil

	case *xebnf.Range:
		start, _ := utf8.DecodeRuneInString(n.Begin.String)
		end, _ := utf8.DecodeRuneInString(n.End.String)
		return terminal(parsec.CharRange(start, end), lexical), nil

	case nil:
		return parsec.Always(struct{}{}), nil

	case *xebnf.Bad:
		return nil, fmt.Errorf("%s: bad expression: %s", n.Pos(), n.Error)
	}
	return nil, fmt.Errorf("unsupported expression type %T", expr)
}

func terminal[R any](p parsec.Parser[R], lexical bool) parsec.Parser[struct{}] {
	out := parsec.Value(p, struct{}{})
	if lexical {
		return out
	}
	return parsec.SkipLeft(skipSpace, out)
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}
