// Package xml is a grammar for a practical subset of XML built from parsec combinators.
//
// Supported are elements, self-closing elements, single or double quoted attributes, comments and
// an optional "<?xml ... ?>" declaration. Entities are not decoded and text is trimmed of
// surrounding whitespace.
package xml

import (
	"fmt"
	"strings"

	"github.com/alecthomas/parsec"
)

// Node is either an *Element or Text.
type Node interface{ node() }

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Element with its attributes in source order.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Attr returns the value of the attribute named name.
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Text content of an element, with comments removed.
type Text string

func (*Element) node() {}
func (Text) node()     {}

// Parse an XML document consisting of a single root element.
func Parse(s string, options ...parsec.Option) (*Element, error) {
	return parsec.Evaluate(document, s, options...)
}

var document = build()

type openTag struct {
	name        string
	attrs       []Attr
	selfClosing bool
}

func build() parsec.Parser[*Element] {
	comment := parsec.Surround(
		parsec.Many0(parsec.SkipLeft(parsec.Not(parsec.Literal("-->")), parsec.AnyChar())),
		parsec.Literal("<!--"),
		parsec.Expected(parsec.Literal("-->"), "unterminated comment"),
	)
	comments := parsec.Many0(comment)
	ignores := parsec.Many0(parsec.Or(parsec.Value(parsec.WhiteSpace(), struct{}{}), parsec.Value(comment, struct{}{})))
	ws := parsec.Many0(parsec.WhiteSpace())

	name := parsec.Match(`[a-zA-Z_][a-zA-Z\-_:\d]*`)
	value := parsec.Map(parsec.Match(`'[^']*'|"[^"]*"`), func(s string) string { return s[1 : len(s)-1] })
	attribute := parsec.Map(
		parsec.And(
			parsec.Trim(name),
			parsec.SkipLeft(
				parsec.Expected(parsec.Char('='), `expected "="`),
				parsec.Expected(parsec.Trim(value), "expected quoted attribute value"),
			),
		),
		func(v parsec.Pair[string, string]) Attr { return Attr{Name: v.Left, Value: v.Right} },
	)
	attributes := parsec.MapErr(parsec.Many0(attribute), checkAttributes)

	tagEnd := parsec.SkipLeft(ws, parsec.Expected(parsec.OneOf(
		parsec.Value(parsec.Literal("/>"), true),
		parsec.Value(parsec.Char('>'), false),
	), `expected ">" or "/>"`))
	open := parsec.Map(
		parsec.And(parsec.SkipLeft(parsec.Char('<'), parsec.And(name, attributes)), tagEnd),
		func(v parsec.Pair[parsec.Pair[string, []Attr], bool]) openTag {
			return openTag{name: v.Left.Left, attrs: v.Left.Right, selfClosing: v.Right}
		},
	)

	text := parsec.Map(
		parsec.Many1(parsec.Surround(parsec.NotInSet("<"), comments, comments)),
		func(rs []rune) Node { return Text(strings.TrimSpace(string(rs))) },
	)

	var element parsec.Parser[*Element]
	node := parsec.OneOf(
		parsec.Map(parsec.Ref(&element), func(e *Element) Node { return e }),
		text,
	)
	children := parsec.SkipRight(parsec.Many0(parsec.SkipLeft(ignores, node)), ignores)

	element = parsec.Named("element", parsec.Map(
		parsec.FlatMap(open, func(tag openTag) parsec.Parser[[]Node] {
			if tag.selfClosing {
				return parsec.Always([]Node{})
			}
			closing := parsec.Surround(parsec.Literal(tag.name), parsec.Literal("</"), parsec.SkipLeft(ws, parsec.Char('>')))
			return parsec.SkipRight(children, parsec.Commit(closing, func(in *parsec.Input, pos int) error {
				return parsec.Errorf("expected </%s> but got %s", tag.name, in.Near(pos))
			}))
		}),
		func(v parsec.Pair[openTag, []Node]) *Element {
			return &Element{Name: v.Left.name, Attrs: v.Left.attrs, Children: v.Right}
		},
	))

	declaration := parsec.Optional(parsec.Match(`<\?xml[^?]*\?>`), "")
	return parsec.SkipLeft(
		parsec.And(ignores, declaration),
		parsec.SkipRight(parsec.SkipLeft(ignores, element), ignores),
	)
}

func checkAttributes(attrs []Attr) ([]Attr, error) {
	seen := map[string]bool{}
	for _, attr := range attrs {
		if seen[attr.Name] {
			return nil, fmt.Errorf("duplicate attribute %q", attr.Name)
		}
		seen[attr.Name] = true
	}
	return attrs, nil
}
