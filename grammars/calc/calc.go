// Package calc evaluates arithmetic expressions.
//
// The grammar supports + - * / with the usual precedence, parentheses, unary minus, the constant
// PI and the functions pow(x, y) and log(x, base):
//
//	Expr   = Term { ( "+" | "-" ) Term } .
//	Term   = Factor { ( "*" | "/" ) Factor } .
//	Factor = number | "(" Expr ")" | "-" Factor | "PI" | "pow" "(" Expr "," Expr ")" | "log" "(" Expr "," Expr ")" .
package calc

import (
	"math"
	"strconv"

	"github.com/alecthomas/parsec"
)

// Eval parses and evaluates expr.
func Eval(expr string, options ...parsec.Option) (float64, error) {
	return parsec.Evaluate(grammar, expr, options...)
}

// Grammar returns the parser for a complete expression.
func Grammar() parsec.Parser[float64] { return grammar }

var grammar = build()

type operation struct {
	op      rune
	operand float64
}

func token(c rune) parsec.Parser[rune] { return parsec.Trim(parsec.Char(c)) }

func expect[R any](p parsec.Parser[R], what string) parsec.Parser[R] {
	return parsec.Commit(p, func(in *parsec.Input, pos int) error {
		return parsec.Errorf("unexpected %s (expected %s)", in.Near(pos), what)
	})
}

// Left-associative chain of operand separated by any of ops.
func chain(operand parsec.Parser[float64], ops string) parsec.Parser[float64] {
	tail := parsec.Many0(parsec.Map(
		parsec.And(parsec.Trim(parsec.CharSet(ops)), operand),
		func(v parsec.Pair[rune, float64]) operation { return operation{v.Left, v.Right} },
	))
	return parsec.Map(parsec.And(operand, tail), func(v parsec.Pair[float64, []operation]) float64 {
		acc := v.Left
		for _, o := range v.Right {
			switch o.op {
			case '+':
				acc += o.operand
			case '-':
				acc -= o.operand
			case '*':
				acc *= o.operand
			case '/':
				acc /= o.operand
			}
		}
		return acc
	})
}

func build() parsec.Parser[float64] {
	var expr, factor parsec.Parser[float64]

	function := func(name string, f func(a, b float64) float64) parsec.Parser[float64] {
		args := parsec.And(
			expect(parsec.Ref(&expr), "expression"),
			parsec.SkipLeft(expect(token(','), `","`), expect(parsec.Ref(&expr), "expression")),
		)
		call := parsec.Surround(args, parsec.And(parsec.Trim(parsec.Literal(name)), token('(')), expect(token(')'), `")"`))
		return parsec.Named(name, parsec.Map(call, func(v parsec.Pair[float64, float64]) float64 { return f(v.Left, v.Right) }))
	}

	number := parsec.Trim(parsec.MapErr(parsec.Match(`\d*\.\d+|\d+`), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}))
	brackets := parsec.Surround(expect(parsec.Ref(&expr), "expression"), token('('), expect(token(')'), `")"`))
	negation := parsec.Map(parsec.SkipLeft(token('-'), parsec.Ref(&factor)), func(f float64) float64 { return -f })
	pi := parsec.Value(parsec.Trim(parsec.Literal("PI")), math.Pi)

	factor = parsec.OneOf(
		number,
		brackets,
		negation,
		pi,
		function("pow", math.Pow),
		function("log", func(x, base float64) float64 { return math.Log(x) / math.Log(base) }),
	)
	term := parsec.Named("term", chain(parsec.Ref(&factor), "*/"))
	expr = parsec.Named("expr", chain(term, "+-"))

	return parsec.Commit(parsec.SkipRight(expr, parsec.End()), func(in *parsec.Input, pos int) error {
		return parsec.Errorf("unexpected %s", in.Near(pos))
	})
}
