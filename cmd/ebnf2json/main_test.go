package main

import (
	"encoding/json"
	"testing"

	require "github.com/alecthomas/assert/v2"
)

func TestParse(t *testing.T) {
	ast, err := parse("", `Production = name "=" [ Expression ] "." .`)
	require.NoError(t, err)
	seq := func(terms ...*Term) *Expression {
		return &Expression{Alternatives: []*Sequence{{Terms: terms}}}
	}
	expected := &EBNF{Productions: []*Production{{
		Name: "Production",
		Expression: []*Expression{seq(
			&Term{Name: "name"},
			&Term{Literal: &Literal{Start: "="}},
			&Term{Option: &Option{Expression: seq(&Term{Name: "Expression"})}},
			&Term{Literal: &Literal{Start: "."}},
		)},
	}}}
	require.Equal(t, expected, ast)
}

func TestParseAlternativesAndRanges(t *testing.T) {
	ast, err := parse("", "digit = \"0\" … \"9\" .\nnumber = digit { digit } | `-` ( number ) .\nempty = .\n")
	require.NoError(t, err)
	data, err := json.Marshal(ast)
	require.NoError(t, err)
	require.Equal(t,
		`{"Productions":[`+
			`{"Name":"digit","Expression":[{"Alternatives":[{"Terms":[{"Literal":{"Start":"0","End":"9"}}]}]}]},`+
			`{"Name":"number","Expression":[{"Alternatives":[`+
			`{"Terms":[{"Name":"digit"},{"Repetition":{"Expression":{"Alternatives":[{"Terms":[{"Name":"digit"}]}]}}}]},`+
			`{"Terms":[{"Literal":{"Start":"-"}},{"Group":{"Expression":{"Alternatives":[{"Terms":[{"Name":"number"}]}]}}}]}`+
			`]}]},`+
			`{"Name":"empty"}`+
			`]}`,
		string(data))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{`A = "a" `, `grammar.ebnf:1:9: unexpected <EOF> (expected ".")`},
		{`A "a" .`, `grammar.ebnf:1:3: unexpected "\"a\" ." (expected "=")`},
		{"A = ( ) .", `grammar.ebnf:1:7: unexpected ") ." (expected expression)`},
		{"A = [ b .", `grammar.ebnf:1:9: unexpected "." (expected "]")`},
		{`A = "a" … .`, `grammar.ebnf:1:11: unexpected "." (expected token)`},
		{"A = b .\n= c .", `grammar.ebnf:2:1: unexpected "= c ." (expected production)`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := parse("grammar.ebnf", test.input)
			require.EqualError(t, err, test.err)
		})
	}
}

func TestVerify(t *testing.T) {
	grammar := "List = \"[\" { item } \"]\" .\nitem = \"a\" … \"z\" .\n"
	require.NoError(t, verify("list.ebnf", grammar, "List"))
	err := verify("list.ebnf", grammar, "item")
	require.EqualError(t, err, "list.ebnf:1:1: List is unreachable")
}
