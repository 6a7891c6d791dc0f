// Package main generates Railroad Diagrams from an EBNF grammar.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	xebnf "golang.org/x/exp/ebnf"

	"github.com/alecthomas/parsec/ebnf"
)

type production struct {
	*xebnf.Production
	refs int
}

// Terminal productions are drawn inline wherever they are referenced.
func (p *production) inline() bool {
	switch p.Expr.(type) {
	case *xebnf.Token, *xebnf.Range:
		return true
	}
	return false
}

// Order productions by their position in the grammar source.
func ordered(grammar xebnf.Grammar) []*xebnf.Production {
	out := make([]*xebnf.Production, 0, len(grammar))
	for _, p := range grammar {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos().Offset < out[j].Pos().Offset })
	return out
}

func generate(grammar xebnf.Grammar) string {
	productions := map[string]*production{}
	for name, p := range grammar {
		productions[name] = &production{Production: p}
	}
	for _, p := range productions {
		countReferences(productions, p.Expr)
	}

	w := &strings.Builder{}
	w.WriteString(`<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<!-- From https://github.com/tabatkins/railroad-diagrams -->
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`)
	for _, p := range ordered(grammar) {
		name := p.Name.String
		if productions[name].refs > 0 && productions[name].inline() {
			continue
		}
		fmt.Fprintf(w, "<h1 id=%q>%s</h1>\n<script>\nDiagram(%s).addTo();\n</script>\n\n", name, name, diagram(productions, p.Expr))
	}
	w.WriteString("</body>\n")
	return w.String()
}

func diagram(productions map[string]*production, expr xebnf.Expression) string {
	join := func(exprs []xebnf.Expression) string {
		parts := make([]string, len(exprs))
		for i, e := range exprs {
			parts[i] = diagram(productions, e)
		}
		return strings.Join(parts, ", ")
	}
	switch n := expr.(type) {
	case nil:
		return "Skip()"
	case xebnf.Alternative:
		return "Choice(0, " + join(n) + ")"
	case xebnf.Sequence:
		return "Sequence(" + join(n) + ")"
	case *xebnf.Group:
		return diagram(productions, n.Body)
	case *xebnf.Option:
		return "Optional(" + diagram(productions, n.Body) + ")"
	case *xebnf.Repetition:
		return "ZeroOrMore(" + diagram(productions, n.Body) + ")"
	case *xebnf.Token:
		return fmt.Sprintf("Terminal(%s)", strconv.Quote(n.String))
	case *xebnf.Range:
		return fmt.Sprintf("Terminal(%s)", strconv.Quote(n.Begin.String+"…"+n.End.String))
	case *xebnf.Name:
		p := productions[n.String]
		if p.inline() {
			return diagram(productions, p.Expr)
		}
		return fmt.Sprintf("NonTerminal(%q, {href:\"#%s\"})", n.String, n.String)
	default:
		panic(repr.String(n))
	}
}

func countReferences(productions map[string]*production, expr xebnf.Expression) {
	switch n := expr.(type) {
	case xebnf.Alternative:
		for _, e := range n {
			countReferences(productions, e)
		}
	case xebnf.Sequence:
		for _, e := range n {
			countReferences(productions, e)
		}
	case *xebnf.Group:
		countReferences(productions, n.Body)
	case *xebnf.Option:
		countReferences(productions, n.Body)
	case *xebnf.Repetition:
		countReferences(productions, n.Body)
	case *xebnf.Name:
		productions[n.String].refs++
	}
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: railroad <grammar.ebnf> <start>")
		fmt.Fprintln(os.Stderr, "Generates railroad diagrams from an EBNF grammar.")
		os.Exit(2)
	}
	r, err := os.Open(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer r.Close()
	grammar, err := ebnf.Parse(os.Args[1], r)
	if err != nil {
		panic(err)
	}
	if err := xebnf.Verify(grammar, os.Args[2]); err != nil {
		panic(err)
	}
	fmt.Println(generate(grammar))
	fmt.Fprintln(os.Stderr, ">>> Copy railroad-diagrams.{css,js} from https://github.com/tabatkins/railroad-diagrams")
}
