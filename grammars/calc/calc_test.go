package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/parsec/grammars/calc"
)

func TestEval(t *testing.T) {
	x := func(v float64) float64 { return v }
	tests := []struct {
		input    string
		expected float64
	}{
		{"1", 1},
		{" 1 ", 1},
		{"1.0", 1},
		{"3.14", 3.14},
		{"-1", -1},
		{"-3.14", -3.14},
		{"2 + 3", 5},
		{"5.2-7.56", x(5.2) - x(7.56)},
		{"123.456*67.89", x(123.456) * x(67.89)},
		{" .78 / 10.4 ", x(0.78) / x(10.4)},
		{"(2+3)*(7-4)", 15},
		{"2 - -3", 5},
		{"8 / 2 / 2", 2},
		{"2.4 / 5.774 * (6 / 3.57 + 6.37) - 2 * 7 / 5.2 + 5",
			x(2.4)/x(5.774)*(x(6)/x(3.57)+x(6.37)) - x(2)*x(7)/x(5.2) + x(5)},
		{"77.58* ( 6 / 3.14+55.2234 ) -2 * 6.1/ ( 1.0+2/ (4.0-3.8*5))  ",
			x(77.58)*(x(6)/x(3.14)+x(55.2234)) - x(2)*x(6.1)/(x(1.0)+x(2)/(x(4.0)-x(3.8)*x(5)))},
		{"PI", math.Pi},
		{"77.58* ( 6 / 3.14+55.2234 ) / (-PI) -2 * 6.1/ ( 1.0+2/ (4.0-3.8*5))  ",
			x(77.58)*(x(6)/x(3.14)+x(55.2234))/(-math.Pi) - x(2)*x(6.1)/(x(1.0)+x(2)/(x(4.0)-x(3.8)*x(5)))},
		{"pow(2, 3) * 10 / PI", math.Pow(2, 3) * 10 / math.Pi},
		{"log(3 * (pow(2, 3) + 3), 3)", math.Log(3*(math.Pow(2, 3)+3)) / math.Log(3)},
	}
	for _, test := range tests {
		actual, err := calc.Eval(test.input)
		require.NoError(t, err, test.input)
		require.InDelta(t, test.expected, actual, 1e-9, test.input)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{"", `1:1: unexpected <EOF>`},
		{"abc", `1:1: unexpected "abc"`},
		{"1.2.3", `1:4: unexpected ".3"`},
		{"2+", `1:2: unexpected "+"`},
		{"-2-3-", `1:5: unexpected "-"`},
		{"1*2-/3", `1:4: unexpected "-/3"`},
		{"()", `1:2: unexpected ")" (expected expression)`},
		{"(", `1:2: unexpected <EOF> (expected expression)`},
		{")", `1:1: unexpected ")"`},
		{"1*(2+(3+4)", `1:11: unexpected <EOF> (expected ")")`},
		{"pow(2 3)", `1:7: unexpected "3)" (expected ",")`},
		{"log(2, )", `1:8: unexpected ")" (expected expression)`},
	}
	for _, test := range tests {
		_, err := calc.Eval(test.input)
		require.EqualError(t, err, test.err, test.input)
	}
}
