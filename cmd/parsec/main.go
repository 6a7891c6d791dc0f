// Package main is a command-line tool for evaluating the grammars bundled with parsec.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	version = "dev"
	log     = commonlog.GetLogger("parsec")
)

// CLI is the command-line interface of parsec.
type CLI struct {
	Globals globals `embed:""`

	Version kong.VersionFlag `help:"Show version."`

	JSON jsonCmd `cmd:"" name:"json" help:"Parse JSON documents."`
	XML  xmlCmd  `cmd:"" name:"xml" help:"Parse XML documents."`
	Calc calcCmd `cmd:"" help:"Evaluate arithmetic expressions."`
	EBNF ebnfCmd `cmd:"" name:"ebnf" help:"Match documents against an EBNF grammar."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("parsec"),
		kong.Description(`Evaluate documents with parser combinator grammars.`),
		kong.Vars{"version": version},
		kong.Configuration(TOMLConfig, "~/.parsec.toml", ".parsec.toml"),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &CLI{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	commonlog.Configure(cli.Globals.Verbose, nil)
	err = kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
