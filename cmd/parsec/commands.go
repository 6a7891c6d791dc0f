package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/parsec"
	"github.com/alecthomas/parsec/ebnf"
	"github.com/alecthomas/parsec/grammars/calc"
	"github.com/alecthomas/parsec/grammars/json"
	"github.com/alecthomas/parsec/grammars/xml"
)

type jsonCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"JSON files to parse (default stdin)."`
}

func (c *jsonCmd) Run(g *globals) error {
	return g.run(c.Files, func(text string, options ...parsec.Option) (interface{}, error) {
		return json.Parse(text, options...)
	})
}

type xmlCmd struct {
	Pretty bool     `help:"Print the document as indented XML regardless of --format."`
	Files  []string `arg:"" optional:"" type:"existingfile" help:"XML files to parse (default stdin)."`
}

func (c *xmlCmd) Run(g *globals) error {
	return g.run(c.Files, func(text string, options ...parsec.Option) (interface{}, error) {
		root, err := xml.Parse(text, options...)
		if err != nil {
			return nil, err
		}
		if c.Pretty {
			return rawOutput(xml.Print(root)), nil
		}
		return root, nil
	})
}

type calcCmd struct {
	Expressions []string `arg:"" optional:"" help:"Expressions to evaluate (default one per line of stdin)."`
}

func (c *calcCmd) Run(g *globals) error {
	eval := func(text string, options ...parsec.Option) (interface{}, error) {
		return calc.Eval(text, options...)
	}
	expressions := c.Expressions
	if len(expressions) == 0 {
		scanner := bufio.NewScanner(g.in())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				expressions = append(expressions, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	ctx, cancel := signalContext()
	defer cancel()
	for i, expr := range expressions {
		if err := g.evaluateAndPrint(ctx, fmt.Sprintf("<expr %d>", i+1), expr, eval); err != nil {
			return err
		}
	}
	return nil
}

type ebnfCmd struct {
	Grammar string   `arg:"" type:"existingfile" help:"EBNF grammar file."`
	Start   string   `arg:"" help:"Start production."`
	Files   []string `arg:"" optional:"" type:"existingfile" help:"Files to match (default stdin)."`
}

func (c *ebnfCmd) Run(g *globals) error {
	r, err := os.Open(c.Grammar)
	if err != nil {
		return err
	}
	defer r.Close()
	grammar, err := ebnf.Parse(c.Grammar, r)
	if err != nil {
		return err
	}
	parser, err := ebnf.Compile(grammar, c.Start)
	if err != nil {
		return err
	}
	log.Debugf("compiled %d productions from %s", len(grammar), c.Grammar)
	return g.run(c.Files, func(text string, options ...parsec.Option) (interface{}, error) {
		return parsec.Evaluate(parser, text, options...)
	})
}
