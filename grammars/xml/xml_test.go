package xml_test

import (
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/sebdah/goldie/v2"

	"github.com/alecthomas/parsec/grammars/xml"
)

const document = `<?xml version="1.0"?>
<root attr1="value1" attr2='value2'>
    <!-- This is a comment -->
    <child1>Text content</child1> <!-- This is a comment -->
    <child2 attr3='value3'/> <!-- This is a comment -->
    <child3>
        <grandchild>
            <!-- This is a comment -->N<!-- This is a comment -->ested<!-- This is a comment --> <!-- This is a comment -->content<!-- This is a comment -->
        </grandchild>
        <empty></empty>
        <quoted q='say "hi"'/>
    </child3>
</root><!-- This is a comment -->
`

func TestParse(t *testing.T) {
	root, err := xml.Parse("<root></root>")
	require.NoError(t, err)
	require.Equal(t, &xml.Element{Name: "root", Attrs: []xml.Attr{}, Children: []xml.Node{}}, root)

	root, err = xml.Parse(`<a x="1" y='2'>hello <b/> world</a>`)
	require.NoError(t, err)
	require.Equal(t, &xml.Element{
		Name:  "a",
		Attrs: []xml.Attr{{Name: "x", Value: "1"}, {Name: "y", Value: "2"}},
		Children: []xml.Node{
			xml.Text("hello"),
			&xml.Element{Name: "b", Attrs: []xml.Attr{}, Children: []xml.Node{}},
			xml.Text("world"),
		},
	}, root)
	value, ok := root.Attr("y")
	require.True(t, ok)
	require.Equal(t, "2", value)
	_, ok = root.Attr("z")
	require.False(t, ok)
}

func TestPrint(t *testing.T) {
	root, err := xml.Parse(document)
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "document", []byte(xml.Print(root)))
}

func TestPrintRoundTrip(t *testing.T) {
	root, err := xml.Parse(document)
	require.NoError(t, err)
	reparsed, err := xml.Parse(xml.Print(root))
	require.NoError(t, err)
	require.Equal(t, root, reparsed)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{`<root attr1='a' attr1='b'></root>`, `1:6: duplicate attribute "attr1"`},
		{`<root></ROOT>`, `1:9: expected </root> but got "ROOT>"`},
		{`<root>`, `1:7: expected </root> but got <EOF>`},
		{`<root><!-- x</root>`, `1:20: unterminated comment`},
		{`<root attr></root>`, `1:11: expected "="`},
		{`<root attr=value></root>`, `1:12: expected quoted attribute value`},
		{`<root`, `1:6: expected ">" or "/>"`},
		{"<a>\n  <b>\n  </a>", `3:5: expected </b> but got "a>"`},
		{`<root/><root/>`, `1:8: unexpected trailing input "<root/>"`},
		{`text`, `1:1: no match (near "text")`},
	}
	for _, test := range tests {
		_, err := xml.Parse(test.input)
		require.EqualError(t, err, test.err, test.input)
	}
}
