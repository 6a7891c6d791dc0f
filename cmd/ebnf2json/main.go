// Package main dumps the syntax tree of an EBNF grammar as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/parsec/ebnf"
)

var (
	fileArg   = kingpin.Arg("file", "EBNF grammar (default stdin).").File()
	startFlag = kingpin.Flag("start", "Also verify that the grammar compiles from this production.").Short('s').String()
)

func main() {
	kingpin.CommandLine.Help = `An EBNF parser compatible with Go's exp/ebnf. The grammar is
in the form:

  Production  = name "=" [ Expression ] "." .
  Expression  = Alternative { "|" Alternative } .
  Alternative = Term { Term } .
  Term        = name | token [ "…" token ] | Group | Option | Repetition .
  Group       = "(" Expression ")" .
  Option      = "[" Expression "]" .
  Repetition  = "{" Expression "}" .
`
	kingpin.Parse()

	r := os.Stdin
	if *fileArg != nil {
		r = *fileArg
		defer r.Close()
	}
	data, err := io.ReadAll(r)
	kingpin.FatalIfError(err, "")
	text := string(data)

	ast, err := parse(r.Name(), text)
	kingpin.FatalIfError(err, "")

	if *startFlag != "" {
		err = verify(r.Name(), text, *startFlag)
		kingpin.FatalIfError(err, "")
	}

	bytes, _ := json.MarshalIndent(ast, "", "  ")
	fmt.Printf("%s\n", bytes)
}

func verify(filename, text, start string) error {
	g, err := ebnf.Parse(filename, strings.NewReader(text))
	if err != nil {
		return err
	}
	_, err = ebnf.Compile(g, start)
	return err
}
